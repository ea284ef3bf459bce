package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/soocke/sticker-scan-go/cmd"
)

const version = "0.1.0"

func main() {
	slog.SetDefault(NewLogger(slog.LevelInfo))

	root := cmd.NewRootCmd()

	// Use fang for automatic completions, manpages, --version, etc.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
