package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itzmetanjim/msys2fetch/internal/config"
	"github.com/itzmetanjim/msys2fetch/internal/ctxlog"
	"github.com/itzmetanjim/msys2fetch/internal/logging"
)

var (
	configPath string
	logLevel   string
	msys2Root  string
	binsFile   string
)

var rootCmd = &cobra.Command{
	Use:   "msys2fetch",
	Short: "Copy MSYS2 mingw-w64 binaries into a target folder",
	Long: `Locate an MSYS2 installation, optionally install the mingw-w64 GNU
userland packages with pacman, and copy the resulting executables into a
target folder for bundling.

Exit codes: 1 not running on Windows, 2 MSYS2 not found, 3 bins file not
found, 4 no files copied.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(logLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(ctxlog.WithLogger(ctx, logger))
		return nil
	},
	RunE: runFetch,
}

func RootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig reads --config, or the default config file when it exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&msys2Root, "msys2-root", "", `path to the MSYS2 root (default: $MSYS2_ROOT, $MSYS2_HOME, $MSYS2_PATH, then C:\msys64)`)
	rootCmd.PersistentFlags().StringVar(&binsFile, "bins-file", "", "newline-separated file listing binary filenames to copy")
}
