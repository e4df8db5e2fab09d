// Package pacman installs packages into an MSYS2 root through its own shell.
package pacman

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itzmetanjim/msys2fetch/internal/ctxlog"
	"github.com/itzmetanjim/msys2fetch/internal/msys2"
	"github.com/itzmetanjim/msys2fetch/internal/runner"
)

// ErrShellNotFound means the MSYS2 bash is missing, so pacman cannot be run.
var ErrShellNotFound = errors.New("MSYS2 bash not found")

// Status values reported when pacman never produced an exit status of its own.
const (
	StatusShellMissing = 2
	StatusStartFailed  = 3
)

// BuildCommand returns the shell command line for one pacman session.
// Unless noUpdate is set a full system update runs first; the install only
// runs if the update succeeded.
func BuildCommand(packages []string, noUpdate bool) string {
	var cmds []string
	if !noUpdate {
		cmds = append(cmds, "pacman -Syu --noconfirm")
	}
	if len(packages) > 0 {
		cmds = append(cmds, "pacman -S --noconfirm "+strings.Join(packages, " "))
	}
	return strings.Join(cmds, " && ")
}

// Installer runs pacman inside an MSYS2 root.
type Installer struct {
	Runner runner.Runner
	// Attached streams pacman's output to the console instead of capturing it.
	Attached bool
}

// Install runs the pacman command for packages and returns pacman's exit
// status. An error is returned only when pacman could not be run at all, in
// which case the status is StatusShellMissing or StatusStartFailed.
func (i *Installer) Install(ctx context.Context, root string, packages []string, noUpdate bool) (int, error) {
	log := ctxlog.FromContext(ctx)

	bash := msys2.ShellPath(root)
	if _, err := os.Stat(bash); err != nil {
		return StatusShellMissing, fmt.Errorf("%w under %s — is MSYS2 installed here?", ErrShellNotFound, filepath.Dir(bash))
	}

	full := BuildCommand(packages, noUpdate)
	if full == "" {
		log.Debug("nothing to install")
		return 0, nil
	}
	log.Info("running in MSYS2", "command", full)

	var out []byte
	var err error
	if i.Attached {
		err = i.Runner.RunAttached(bash, "-lc", full)
	} else {
		out, err = i.Runner.Run(bash, "-lc", full)
	}

	status, ok := runner.ExitCode(err)
	if !ok {
		return StatusStartFailed, fmt.Errorf("failed to run pacman: %w", err)
	}
	if len(out) > 0 {
		if status != 0 {
			log.Warn("pacman output", "output", string(out))
		} else {
			log.Debug("pacman output", "output", string(out))
		}
	}
	return status, nil
}
