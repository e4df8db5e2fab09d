// Package fetch sequences a run: platform check, root lookup, binary
// selection, optional pacman install and the copy.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/itzmetanjim/msys2fetch/internal/copier"
	"github.com/itzmetanjim/msys2fetch/internal/ctxlog"
	"github.com/itzmetanjim/msys2fetch/internal/manifest"
	"github.com/itzmetanjim/msys2fetch/internal/msys2"
	"github.com/itzmetanjim/msys2fetch/internal/platform"
)

// ErrNothingCopied is returned when a full copy pass copied no files.
var ErrNothingCopied = errors.New("no files copied — check that the MSYS2 mingw packages are installed and the mingw bin folder contains executables")

// Process exit codes.
const (
	ExitOK = iota
	ExitWrongPlatform
	ExitRootNotFound
	ExitManifestNotFound
	ExitNothingCopied
)

// ExitCode maps an error returned by Run or Locate to the process exit code.
// Errors outside the known classes map to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, platform.ErrNotWindows):
		return ExitWrongPlatform
	case errors.Is(err, msys2.ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, manifest.ErrManifestNotFound):
		return ExitManifestNotFound
	case errors.Is(err, ErrNothingCopied):
		return ExitNothingCopied
	default:
		return 1
	}
}

// Installer installs packages into an MSYS2 root and reports pacman's exit status.
type Installer interface {
	Install(ctx context.Context, root string, packages []string, noUpdate bool) (int, error)
}

// Options are the per-run settings taken from the command line.
type Options struct {
	Root     string
	Target   string
	Arch     msys2.Arch
	Install  bool
	NoUpdate bool
	BinsFile string
}

// Fetcher runs the fetch. GOOS is the host OS checked before any other work;
// Detector is optional and only consulted when debug logging is enabled.
type Fetcher struct {
	GOOS      string
	Detector  platform.Detector
	Locator   *msys2.Locator
	Installer Installer
	Packages  []string
	Binaries  []string
	Out       io.Writer
}

// Locate checks the platform and finds the MSYS2 root.
func (f *Fetcher) Locate(ctx context.Context, explicit string) (string, error) {
	log := ctxlog.FromContext(ctx)

	if err := platform.Check(f.GOOS); err != nil {
		return "", err
	}
	if f.Detector != nil && log.Enabled(ctx, slog.LevelDebug) {
		if info, err := f.Detector.Detect(ctx); err == nil {
			log.Debug("host detected", "os", info.OS, "arch", info.Arch, "platform", info.Platform, "version", info.Version, "kernel_arch", info.KernelArch)
		}
	}

	root, err := f.Locator.Find(explicit)
	if err != nil {
		if explicit == "" {
			return "", fmt.Errorf("%w — install MSYS2 from https://www.msys2.org/ and re-run, or pass --msys2-root", err)
		}
		return "", err
	}
	return root, nil
}

// Run performs one fetch and returns the copy counts. Only fatal conditions
// are returned as errors; installer problems are logged and the copy still
// runs.
func (f *Fetcher) Run(ctx context.Context, opts Options) (copier.Result, error) {
	log := ctxlog.FromContext(ctx)

	root, err := f.Locate(ctx, opts.Root)
	if err != nil {
		return copier.Result{}, err
	}
	fmt.Fprintf(f.Out, "Using MSYS2 root: %s\n", root)

	bins, err := manifest.Select(opts.BinsFile, f.Binaries)
	if err != nil {
		return copier.Result{}, err
	}
	log.Debug("binaries selected", "count", len(bins), "bins_file", opts.BinsFile)

	if opts.Install {
		fmt.Fprintln(f.Out, "Installing packages via pacman...")
		f.install(ctx, root, opts.NoUpdate)
	}

	fmt.Fprintf(f.Out, "Copying binaries to target: %s\n", opts.Target)
	res, copyErr := copier.Copy(ctx, root, opts.Target, bins, opts.Arch)
	fmt.Fprintf(f.Out, "Copy complete. Copied: %d, Missing: %d\n", res.Copied, res.Missing)

	if res.Copied == 0 {
		if copyErr != nil {
			return res, fmt.Errorf("%w: %w", ErrNothingCopied, copyErr)
		}
		return res, ErrNothingCopied
	}
	return res, nil
}

func (f *Fetcher) install(ctx context.Context, root string, noUpdate bool) {
	log := ctxlog.FromContext(ctx)

	status, err := f.Installer.Install(ctx, root, f.Packages, noUpdate)
	if err != nil {
		log.Warn("package install skipped", "error", err)
		return
	}
	if status != 0 {
		log.Warn("pacman returned non-zero exit code; you may need to open the MSYS2 shell and update manually", "status", status)
	}
}
