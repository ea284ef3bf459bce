package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/collection"
	"github.com/soocke/sticker-scan-go/config"
)

func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "sticker-scan",
		Short: "Sticker album collection tracker with camera-based scanning",
		Long: `Sticker-scan tracks which stickers of a collectible album you own.

It keeps the collection in a plain CSV file, answers which stickers are
missing or duplicated, compares collections with other collectors, and can
read sticker numbers straight off a camera feed via OCR.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "config.json", "path to the configuration file")

	cmd.AddCommand(newAddCmd(&cfgPath))
	cmd.AddCommand(newMissingCmd(&cfgPath))
	cmd.AddCommand(newOwnedCmd(&cfgPath))
	cmd.AddCommand(newStatsCmd(&cfgPath))
	cmd.AddCommand(newDupesCmd(&cfgPath))
	cmd.AddCommand(newCompareCmd(&cfgPath))
	cmd.AddCommand(newScanCmd(&cfgPath))

	return cmd
}

// loadSetup resolves the config and opens the collection store it points at.
func loadSetup(cfgPath string) (*config.Config, *collection.Store, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	store := collection.NewStore(cfg.CollectionFile, slog.Default())
	return cfg, store, nil
}
