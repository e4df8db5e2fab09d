package runner

import (
	"errors"
	"os"
	"os/exec"
)

// Runner executes system commands. Mockable for tests.
type Runner interface {
	// Run executes a command, returning combined output and error.
	Run(name string, args ...string) ([]byte, error)
	// RunAttached executes a command with stdin/stdout/stderr attached to the terminal.
	RunAttached(name string, args ...string) error
}

// SystemRunner executes real system commands.
type SystemRunner struct{}

func (r *SystemRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

func (r *SystemRunner) RunAttached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExitCode extracts the process exit status from an error returned by a Runner.
// A nil error is status 0. The second return value is false when err does not
// carry an exit status, i.e. the process could not be started or waited on.
func ExitCode(err error) (int, bool) {
	if err == nil {
		return 0, true
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode(), true
	}
	return 0, false
}
