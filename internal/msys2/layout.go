package msys2

import (
	"fmt"
	"path/filepath"
)

// Arch selects which mingw tree binaries are taken from.
type Arch string

const (
	ArchX86_64 Arch = "x86_64"
	ArchARM64  Arch = "arm64"
	ArchI686   Arch = "i686"
)

// Arches lists the values accepted by ParseArch, in help order.
var Arches = []Arch{ArchX86_64, ArchARM64, ArchI686}

// ParseArch accepts the architecture names used on the command line.
// "amd64" is accepted as an alias for x86_64.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "x86_64", "amd64":
		return ArchX86_64, nil
	case "arm64":
		return ArchARM64, nil
	case "i686":
		return ArchI686, nil
	default:
		return "", fmt.Errorf("unsupported architecture %q (want x86_64, arm64 or i686)", s)
	}
}

// MingwDir returns the mingw tree for the architecture. MSYS2 has no separate
// ARM64 tree here, so arm64 shares the 32-bit layout.
func (a Arch) MingwDir() string {
	if a == ArchX86_64 || a == "amd64" {
		return "mingw64"
	}
	return "mingw32"
}

// BinDir is the directory holding the mingw executables for arch.
func BinDir(root string, arch Arch) string {
	return filepath.Join(root, arch.MingwDir(), "bin")
}

// ShellPath is the MSYS2 bash used to run pacman.
func ShellPath(root string) string {
	return filepath.Join(root, "usr", "bin", "bash.exe")
}

func PacmanPath(root string) string {
	return filepath.Join(root, "usr", "bin", "pacman.exe")
}
