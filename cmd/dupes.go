package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/soocke/sticker-scan-go/report"
)

func newDupesCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "dupes",
		Aliases: []string{"duplicates"},
		Short:   "List stickers owned more than once",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadSetup(*cfgPath)
			if err != nil {
				return err
			}
			owned, err := store.Load()
			if err != nil {
				return err
			}
			dupes := report.Duplicates(owned)
			if len(dupes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No duplicates.")
				return nil
			}
			numbers := make([]int, 0, len(dupes))
			for n := range dupes {
				numbers = append(numbers, n)
			}
			sort.Ints(numbers)
			fmt.Fprintf(cmd.OutOrStdout(), "%d sticker(s) with spares:\n", len(numbers))
			for _, n := range numbers {
				fmt.Fprintf(cmd.OutOrStdout(), "- %d (%d spare)\n", n, dupes[n])
			}
			return nil
		},
	}
}
