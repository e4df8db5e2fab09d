package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itzmetanjim/msys2fetch/internal/config"
)

var forceConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage msys2fetch configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in defaults to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil && !forceConfig {
			return fmt.Errorf("config already exists at %s — use --force to overwrite", path)
		}

		if err := config.Default().Save(path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
