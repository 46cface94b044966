// Package exitcode defines exit codes for the CLI and outcomes of menu commands.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad flags, bad input, task not found).
	UserError = 1

	// ConfigError indicates an unreadable or invalid settings file.
	ConfigError = 2

	// BackendError indicates the session could not be created or input failed.
	BackendError = 3
)
