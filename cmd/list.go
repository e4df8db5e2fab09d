package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itzmetanjim/msys2fetch/internal/manifest"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the binary names a fetch would copy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		bins, err := manifest.Select(binsFile, cfg.Binaries)
		if err != nil {
			return exitError(err)
		}
		for _, name := range bins {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
