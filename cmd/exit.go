package cmd

import (
	"errors"

	"github.com/itzmetanjim/msys2fetch/internal/fetch"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitError attaches the exit code for err's class. nil stays nil.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: fetch.ExitCode(err), Err: err}
}

// ExitCode returns the code the process should exit with after err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
