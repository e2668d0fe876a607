package cli

import "errors"

// Exit codes for md-fixup, following the sysexits.h convention the
// original tool used for its severity-keyed codes.
const (
	// ExitSuccess indicates every file processed cleanly.
	ExitSuccess = 0

	// ExitRunErrors indicates the run completed but at least one file
	// was unreadable, failed to overwrite, or a replacement regex
	// failed to compile without --continue-on-error.
	ExitRunErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates malformed YAML, an unknown config key,
	// or an invalid rule identifier in rules.skip/rules.include.
	ExitConfigError = 65

	// ExitInternalError indicates an internal invariant was violated;
	// treated as a bug, never a signal about the input document.
	ExitInternalError = 70
)

// RunError pairs an error with the exit code the CLI should report for
// it, so main can stay a thin errors.As switch instead of re-deriving
// severity from error text.
type RunError struct {
	Code int
	Err  error
}

func (e *RunError) Error() string { return e.Err.Error() }
func (e *RunError) Unwrap() error { return e.Err }

// ExitCodeForError maps err to an exit code. A nil error is success; an
// error not wrapped in *RunError is treated as an internal error.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Code
	}
	return ExitInternalError
}
