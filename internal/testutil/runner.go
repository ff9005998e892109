package testutil

import "context"

// RecordingRunner is a CommandRunner double that records every command it
// is asked to run instead of launching anything. Specific commands can be
// scripted to fail with an exit status or a launch error.
type RecordingRunner struct {
	// Commands accumulates every command in the order it was dispatched.
	Commands []string
	// ExitStatus maps a command string to a non-zero exit status.
	ExitStatus map[string]int
	// LaunchErr maps a command string to a launch failure.
	LaunchErr map[string]error
}

// NewRecordingRunner creates an empty recording runner where every command
// succeeds.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{
		ExitStatus: make(map[string]int),
		LaunchErr:  make(map[string]error),
	}
}

// Run records the command and reports its scripted outcome.
func (r *RecordingRunner) Run(_ context.Context, command string) (int, error) {
	r.Commands = append(r.Commands, command)
	if err, ok := r.LaunchErr[command]; ok {
		return -1, err
	}
	return r.ExitStatus[command], nil
}
