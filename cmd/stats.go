package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/report"
)

func newStatsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := loadSetup(*cfgPath)
			if err != nil {
				return err
			}
			owned, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Summarise(owned, cfg.AlbumSize))
			return nil
		},
	}
}
