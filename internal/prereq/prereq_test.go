package prereq

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, nil, 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestCheckAllPresent(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "usr", "bin", "bash.exe"))
	touch(t, filepath.Join(root, "usr", "bin", "pacman.exe"))

	errs := Check(root)
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestCheckMissing(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "usr", "bin", "pacman.exe"))

	errs := Check(root)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "bash.exe") {
		t.Errorf("expected bash.exe error, got: %v", errs[0])
	}
}

func TestTools(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "usr", "bin", "bash.exe"))

	tools := Tools(root)
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
	if tools[0].Name != "bash.exe" || !tools[0].Found {
		t.Errorf("tools[0] = %+v, want bash.exe found", tools[0])
	}
	if tools[1].Name != "pacman.exe" || tools[1].Found {
		t.Errorf("tools[1] = %+v, want pacman.exe missing", tools[1])
	}
	if tools[1].Path != filepath.Join(root, "usr", "bin", "pacman.exe") {
		t.Errorf("tools[1].Path = %q", tools[1].Path)
	}
}
