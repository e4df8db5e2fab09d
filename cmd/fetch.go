package cmd

import (
	"os"
	"runtime"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/itzmetanjim/msys2fetch/internal/config"
	"github.com/itzmetanjim/msys2fetch/internal/fetch"
	"github.com/itzmetanjim/msys2fetch/internal/msys2"
	"github.com/itzmetanjim/msys2fetch/internal/pacman"
	"github.com/itzmetanjim/msys2fetch/internal/platform"
	"github.com/itzmetanjim/msys2fetch/internal/runner"
)

var (
	target   string
	arch     string
	install  bool
	noUpdate bool
)

func newFetcher(cmd *cobra.Command, cfg *config.Config) *fetch.Fetcher {
	return &fetch.Fetcher{
		GOOS:     runtime.GOOS,
		Detector: platform.NewDetector(),
		Locator:  msys2.NewLocator(cfg.RootEnvVars, cfg.DefaultRoots),
		Installer: &pacman.Installer{
			Runner:   &runner.SystemRunner{},
			Attached: term.IsTerminal(os.Stdout.Fd()),
		},
		Packages: cfg.Packages,
		Binaries: cfg.Binaries,
		Out:      cmd.OutOrStdout(),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := msys2.ParseArch(arch)
	if err != nil {
		return err
	}

	// Refuse non-Windows hosts before the config file is read.
	if err := platform.Check(runtime.GOOS); err != nil {
		return exitError(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f := newFetcher(cmd, cfg)
	_, err = f.Run(cmd.Context(), fetch.Options{
		Root:     msys2Root,
		Target:   target,
		Arch:     a,
		Install:  install,
		NoUpdate: noUpdate,
		BinsFile: binsFile,
	})
	return exitError(err)
}

func init() {
	rootCmd.Flags().StringVar(&target, "target", "binaries/windows_x86_64", "target directory to copy EXEs into")
	rootCmd.Flags().StringVar(&arch, "arch", string(msys2.ArchX86_64), "target architecture: x86_64 (mingw64), arm64 or i686 (mingw32)")
	rootCmd.Flags().BoolVar(&install, "install", false, "run pacman to install the required mingw packages before copying")
	rootCmd.Flags().BoolVar(&noUpdate, "no-update", false, "do not run pacman -Syu (skip full update)")
}
