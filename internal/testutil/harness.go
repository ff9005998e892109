// Package testutil provides shared helpers for integration tests: a
// command-recording runner and a harness that runs the app against a
// taskfile written to a temp directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is what the app wrote to its output stream (task lists).
	Output string
	// LogOutput is the captured structured log stream.
	LogOutput string
	// Err is the error returned by App.Run (or app construction).
	Err error
	// Runner is the recording runner the app executed commands through.
	Runner *RecordingRunner
}

// RunTaskfile writes a taskfile with the given name and content to a temp
// directory and runs the app against it with a recording runner. The zero
// value of cfg runs the taskfile's default target. cfg.TaskfilePath is set
// by the harness.
func RunTaskfile(t *testing.T, filename, content string, cfg app.Config, runner *RecordingRunner) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg.TaskfilePath = path
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	if runner == nil {
		runner = NewRecordingRunner()
	}
	var outBuf, logBuf bytes.Buffer

	result := &HarnessResult{Runner: runner}
	taskmillApp, err := app.NewApp(&outBuf, &logBuf, appConfig, runner)
	if err != nil {
		result.Err = err
	} else {
		result.Err = taskmillApp.Run(context.Background())
	}

	result.Output = outBuf.String()
	result.LogOutput = logBuf.String()
	return result
}
