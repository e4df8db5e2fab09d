// Package copier copies mingw executables out of an MSYS2 root.
package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/itzmetanjim/msys2fetch/internal/ctxlog"
	"github.com/itzmetanjim/msys2fetch/internal/msys2"
)

// ErrSourceDirNotFound is returned when the mingw bin directory for the
// requested architecture does not exist.
var ErrSourceDirNotFound = errors.New("mingw bin directory not found")

// Result counts the outcome of one Copy call. Files that exist but fail to
// copy are in neither counter.
type Result struct {
	Copied  int
	Missing int
}

// Copy copies each of names, in order, from the mingw bin directory of root
// into target. A missing source directory returns a zero Result and leaves
// target untouched. Per-file copy failures are logged and skipped.
func Copy(ctx context.Context, root, target string, names []string, arch msys2.Arch) (Result, error) {
	log := ctxlog.FromContext(ctx)

	srcDir := msys2.BinDir(root, arch)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		log.Error("mingw bin directory not found", "path", srcDir)
		return Result{}, fmt.Errorf("%w at %s", ErrSourceDirNotFound, srcDir)
	}

	if err := os.MkdirAll(target, 0755); err != nil {
		return Result{}, fmt.Errorf("create target dir: %w", err)
	}

	var res Result
	for _, name := range names {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(target, name)
		if _, err := os.Stat(src); err != nil {
			log.Info("missing in mingw bin, skipping", "name", name)
			res.Missing++
			continue
		}
		if err := copyFile(src, dst); err != nil {
			log.Error("failed to copy", "name", name, "error", err)
			continue
		}
		log.Info("copied", "name", name)
		res.Copied++
	}
	return res, nil
}

// copyFile copies src to dst, carrying over the permission bits and the
// modification time. An existing read-only dst is overwritten; a dst that
// resolves to src itself is refused.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return err
	}
	if stat.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	if existing, err := os.Stat(dst); err == nil && os.SameFile(stat, existing) {
		return fmt.Errorf("%s and %s are the same file", src, dst)
	}

	if existing, err := os.Lstat(dst); err == nil && existing.Mode().Perm()&0200 == 0 {
		if err := os.Chmod(dst, existing.Mode().Perm()|0200); err != nil {
			return err
		}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stat.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, stat.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, stat.ModTime(), stat.ModTime())
}
