// Package manifest selects the binary names a run copies.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// ErrManifestNotFound is returned when an explicitly named bins file is missing.
var ErrManifestNotFound = errors.New("bins file not found")

// Parse reads one binary name per line. LF, CRLF and lone CR all end a line.
// Names are trimmed; blank lines are dropped; order is kept and duplicates are
// not removed.
func Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	var names []string
	lines := strings.FieldsFunc(text, func(c rune) bool { return c == '\n' || c == '\r' })
	for _, line := range lines {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Load parses the bins file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("open bins file: %w", err)
	}
	defer f.Close()

	names, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read bins file %s: %w", path, err)
	}
	return names, nil
}

// Select returns the names from the bins file at path, or a copy of defaults
// when path is empty.
func Select(path string, defaults []string) ([]string, error) {
	if path == "" {
		return slices.Clone(defaults), nil
	}
	return Load(path)
}
