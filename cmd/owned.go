package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/report"
)

func newOwnedCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "owned",
		Short: "List sticker numbers already in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadSetup(*cfgPath)
			if err != nil {
				return err
			}
			owned, err := store.Load()
			if err != nil {
				return err
			}
			numbers := report.Owned(owned)
			if len(numbers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stickers collected yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Owned %d sticker(s):\n%s\n", len(numbers), report.FormatNumbers(numbers))
			return nil
		},
	}
}
