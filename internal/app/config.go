package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// TaskfilePath points at the taskfile. Empty means "discover a
	// default-named taskfile in the working directory".
	TaskfilePath string
	// Target is the task to run. Empty resolves to the taskfile's
	// configured default, falling back to the first declared task.
	Target string
	// ListTasks prints the task table instead of executing anything.
	ListTasks bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
