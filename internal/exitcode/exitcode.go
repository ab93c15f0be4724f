// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty input, unknown id).
	UserError = 1

	// BackendError indicates a backend/network error.
	BackendError = 2
)
