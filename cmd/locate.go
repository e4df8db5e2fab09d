package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/itzmetanjim/msys2fetch/internal/ctxlog"
	"github.com/itzmetanjim/msys2fetch/internal/msys2"
	"github.com/itzmetanjim/msys2fetch/internal/platform"
	"github.com/itzmetanjim/msys2fetch/internal/prereq"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the MSYS2 root a fetch would use and what it contains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := platform.Check(runtime.GOOS); err != nil {
			return exitError(err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		root, err := newFetcher(cmd, cfg).Locate(cmd.Context(), msys2Root)
		if err != nil {
			return exitError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Root: %s\n", root)
		for _, a := range []msys2.Arch{msys2.ArchX86_64, msys2.ArchI686} {
			dir := msys2.BinDir(root, a)
			fmt.Fprintf(out, "%-6s %s (%s)\n", a.MingwDir()+":", dir, presence(dir))
		}
		for _, tool := range prereq.Tools(root) {
			state := "ok"
			if !tool.Found {
				state = "missing"
			}
			fmt.Fprintf(out, "%-11s %s (%s)\n", tool.Name+":", tool.Path, state)
		}
		log := ctxlog.FromContext(cmd.Context())
		for _, e := range prereq.Check(root) {
			log.Warn("prerequisite missing", "error", e)
		}
		return nil
	},
}

func presence(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "ok"
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
