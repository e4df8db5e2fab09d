// Package msys2 knows where an MSYS2 installation lives and how it is laid out.
package msys2

import (
	"errors"
	"fmt"
	"os"
)

// ErrRootNotFound is returned when no MSYS2 installation could be located.
var ErrRootNotFound = errors.New("MSYS2 installation not found")

// Locator finds an MSYS2 root in preference order: an explicit path, then the
// first environment variable naming an existing path, then the first default
// root that exists.
type Locator struct {
	EnvVars []string
	Roots   []string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

func NewLocator(envVars, roots []string) *Locator {
	return &Locator{EnvVars: envVars, Roots: roots, Getenv: os.Getenv}
}

// Find returns the root to use. A non-empty explicit path is authoritative:
// if it does not exist Find fails without consulting the environment or the
// default roots.
func (l *Locator) Find(explicit string) (string, error) {
	if explicit != "" {
		if exists(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w at %s", ErrRootNotFound, explicit)
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range l.EnvVars {
		if val := getenv(key); val != "" && exists(val) {
			return val, nil
		}
	}

	for _, root := range l.Roots {
		if exists(root) {
			return root, nil
		}
	}
	return "", ErrRootNotFound
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
