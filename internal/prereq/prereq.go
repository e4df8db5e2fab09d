package prereq

import (
	"fmt"
	"os"

	"github.com/itzmetanjim/msys2fetch/internal/msys2"
)

type requirement struct {
	name    string
	path    func(root string) string
	pkgHint string
}

var requirements = []requirement{
	{"bash.exe", msys2.ShellPath, "bash"},
	{"pacman.exe", msys2.PacmanPath, "pacman"},
}

// Tool is the presence check result for one MSYS2 tool.
type Tool struct {
	Name  string
	Path  string
	Found bool
}

// Tools reports every required tool under root, found or not.
func Tools(root string) []Tool {
	tools := make([]Tool, 0, len(requirements))
	for _, req := range requirements {
		p := req.path(root)
		_, err := os.Stat(p)
		tools = append(tools, Tool{Name: req.name, Path: p, Found: err == nil})
	}
	return tools
}

// Check verifies the MSYS2 tools needed to install packages exist under root.
// Returns a list of errors for each missing tool.
func Check(root string) []error {
	var errs []error
	for i, tool := range Tools(root) {
		if !tool.Found {
			errs = append(errs, fmt.Errorf("%s not found at %s — reinstall MSYS2 or run 'pacman -S %s' from its shell", tool.Name, tool.Path, requirements[i].pkgHint))
		}
	}
	return errs
}
