package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/itzmetanjim/msys2fetch/cmd"
	"github.com/itzmetanjim/msys2fetch/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := fang.Execute(ctx, cmd.RootCmd(),
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		cancel()
		os.Exit(cmd.ExitCode(err))
	}
}
