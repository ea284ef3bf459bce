package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/app"
	"github.com/soocke/sticker-scan-go/config"
)

func newScanCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Open the interactive camera scanner",
		Long: `Opens a window that previews the configured screen region and reads
sticker numbers off it via OCR.

Keys: [S] toggle capture, [D] detect, [N] accept, [A] commit,
[C] clear, [Q] quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			application := app.NewApp("Sticker Scan", 800, 600, cfg, *cfgPath, slog.Default())
			application.Start()
			return nil
		},
	}
}
