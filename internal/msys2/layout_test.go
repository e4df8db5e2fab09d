package msys2

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		in      string
		want    Arch
		wantErr bool
	}{
		{"x86_64", ArchX86_64, false},
		{"amd64", ArchX86_64, false},
		{"arm64", ArchARM64, false},
		{"i686", ArchI686, false},
		{"ppc64", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseArch(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBinDir(t *testing.T) {
	root := filepath.Join("C:", "msys64")
	assert.Equal(t, filepath.Join(root, "mingw64", "bin"), BinDir(root, ArchX86_64))
	assert.Equal(t, filepath.Join(root, "mingw64", "bin"), BinDir(root, Arch("amd64")))
	assert.Equal(t, filepath.Join(root, "mingw32", "bin"), BinDir(root, ArchI686))
	assert.Equal(t, filepath.Join(root, "mingw32", "bin"), BinDir(root, ArchARM64))
}

func TestToolPaths(t *testing.T) {
	root := filepath.Join("C:", "msys64")
	assert.Equal(t, filepath.Join(root, "usr", "bin", "bash.exe"), ShellPath(root))
	assert.Equal(t, filepath.Join(root, "usr", "bin", "pacman.exe"), PacmanPath(root))
}
