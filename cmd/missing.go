package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/report"
)

func newMissingCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List sticker numbers not yet in the collection",
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
			missing := report.Missing(owned, cfg.AlbumSize)
			if len(missing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Album complete, nothing missing!")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Missing %d sticker(s):\n%s\n", len(missing), report.FormatNumbers(missing))
			return nil
		},
	}
}
