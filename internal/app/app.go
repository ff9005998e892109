package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/ctxlog"
	"github.com/vk/taskmill/internal/executor"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	runner executor.CommandRunner

	// taskfile is the resolved taskfile path, kept for display.
	taskfile string
}

// NewApp constructs the application: it builds an isolated logger, resolves
// the taskfile path, and loads it into the format-agnostic model. Command
// output and the task list go to outW; logs go to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, runner executor.CommandRunner) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	path, err := resolveTaskfile(appConfig.TaskfilePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Taskfile resolved.", "path", path)

	loader, err := loaderForPath(path)
	if err != nil {
		return nil, err
	}

	model, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taskfile: %w", err)
	}
	logger.Debug("Taskfile loaded into unified model.", "tasks", len(model.Tasks))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    model,
		runner:   runner,
		taskfile: path,
	}, nil
}

// Model returns the loaded taskfile model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
