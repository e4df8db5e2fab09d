package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "blank lines and padding",
			input: "  ls.exe\n\ncat.exe  \n\t\n   \ngrep.exe\n",
			want:  []string{"ls.exe", "cat.exe", "grep.exe"},
		},
		{
			name:  "crlf",
			input: "sed.exe\r\n\r\ngawk.exe\r\n",
			want:  []string{"sed.exe", "gawk.exe"},
		},
		{
			name:  "lone cr",
			input: "ls.exe\rcat.exe\r",
			want:  []string{"ls.exe", "cat.exe"},
		},
		{
			name:  "mixed endings",
			input: "ls.exe\r\ncat.exe\rgrep.exe\n",
			want:  []string{"ls.exe", "cat.exe", "grep.exe"},
		},
		{
			name:  "byte order mark",
			input: "\ufefftar.exe\nxz.exe",
			want:  []string{"tar.exe", "xz.exe"},
		},
		{
			name:  "duplicates kept in order",
			input: "zip.exe\nunzip.exe\nzip.exe\n",
			want:  []string{"zip.exe", "unzip.exe", "zip.exe"},
		},
		{
			name:  "empty",
			input: "\n\n  \n",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("x", 100*1024) + ".exe"
	got, err := Parse(strings.NewReader("ls.exe\n" + long + "\ncat.exe\n"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, long, got[1])
	assert.Equal(t, "cat.exe", got[2])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bins.txt")
	require.NoError(t, os.WriteFile(path, []byte(" which.exe \n\nfind.exe\n"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"which.exe", "find.exe"}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestSelectDefaults(t *testing.T) {
	defaults := []string{"ls.exe", "cp.exe"}

	got, err := Select("", defaults)
	require.NoError(t, err)
	if diff := cmp.Diff(defaults, got); diff != "" {
		t.Errorf("Select() mismatch (-want +got):\n%s", diff)
	}

	got[0] = "changed.exe"
	assert.Equal(t, "ls.exe", defaults[0], "Select must not hand out the defaults slice")
}

func TestSelectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bins.txt")
	require.NoError(t, os.WriteFile(path, []byte("date.exe\n"), 0644))

	got, err := Select(path, []string{"ls.exe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"date.exe"}, got)
}

func TestSelectMissingFile(t *testing.T) {
	_, err := Select(filepath.Join(t.TempDir(), "nope.txt"), []string{"ls.exe"})
	assert.ErrorIs(t, err, ErrManifestNotFound)
}
