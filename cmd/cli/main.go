package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/cli"
	"github.com/vk/taskmill/internal/executor"
	"github.com/vk/taskmill/internal/shell"
)

// main is the entrypoint for the taskmill application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Recipe command output is relayed unfiltered to the caller's streams.
	runner := shell.NewRunner(outW, errW)
	taskmillApp, err := app.NewApp(outW, errW, appConfig, runner)
	if err != nil {
		return err
	}

	return taskmillApp.Run(context.Background())
}

// exitCode maps an error to the process exit status: a failing recipe
// command propagates its own exit status, everything else (configuration
// errors, unknown targets, bad flags) is 2.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cmdErr *executor.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitStatus > 0 {
			return cmdErr.ExitStatus
		}
		return 1
	}

	return 2
}
