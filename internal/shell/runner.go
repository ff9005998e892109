// Package shell provides the production CommandRunner: recipe commands are
// handed verbatim to the system shell with the current environment and
// working directory.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/vk/taskmill/internal/ctxlog"
)

// Runner executes command strings via `sh -c`. Command output is relayed to
// the configured writers for the caller's visibility; only the exit status
// is interpreted.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a runner relaying command output to the given writers.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr}
}

// Run launches one command and blocks until it completes. A command, once
// launched, runs to natural completion: the context is used for logging
// only, not for mid-command cancellation.
func (r *Runner) Run(ctx context.Context, command string) (int, error) {
	ctxlog.FromContext(ctx).Debug("Launching shell command.", "command", command)

	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	// The command could not be started at all (e.g. no shell available).
	return -1, err
}
