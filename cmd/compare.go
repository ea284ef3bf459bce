package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/report"
)

func newCompareCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <url>",
		Short: "Compare the collection with another collector's ledger",
		Long: `Fetches another collector's CSV ledger from a URL and works out a
possible exchange: which of their spares you are missing and which of
your spares they are missing.`,
		Example: `  sticker-scan compare https://example.org/collections/lena.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := loadSetup(*cfgPath)
			if err != nil {
				return err
			}
			ours, err := store.Load()
			if err != nil {
				return err
			}
			theirs, err := report.NewFetcher().FetchCollection(args[0])
			if err != nil {
				return err
			}
			ex := report.CompareCollections(ours, theirs, cfg.AlbumSize)
			out := cmd.OutOrStdout()
			if len(ex.TheyGive) == 0 && len(ex.WeGive) == 0 {
				fmt.Fprintln(out, "No exchange possible.")
				return nil
			}
			if len(ex.TheyGive) > 0 {
				fmt.Fprintf(out, "They can give you %d sticker(s):\n", len(ex.TheyGive))
				for _, o := range ex.TheyGive {
					fmt.Fprintf(out, "- %d (%d spare)\n", o.Number, o.Spare)
				}
			}
			if len(ex.WeGive) > 0 {
				fmt.Fprintf(out, "You can give them %d sticker(s):\n", len(ex.WeGive))
				for _, o := range ex.WeGive {
					fmt.Fprintf(out, "- %d (%d spare)\n", o.Number, o.Spare)
				}
			}
			return nil
		},
	}
}
