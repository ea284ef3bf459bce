package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(cfgPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "add <numbers>",
		Short: "Add sticker numbers to the collection",
		Long: `Adds one or more sticker numbers to the collection.

Numbers are comma-separated. A number you already own triggers a
confirmation prompt before it is counted again as a duplicate.`,
		Example: `  # Add three stickers
  sticker-scan add 12,45,102

  # Add without the duplicate confirmation prompt
  sticker-scan add 12,12 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := loadSetup(*cfgPath)
			if err != nil {
				return err
			}
			numbers, invalid := parseNumbers(args[0], cfg.AlbumSize)
			if len(invalid) > 0 {
				return fmt.Errorf("invalid sticker numbers (must be 1-%d): %s", cfg.AlbumSize, strings.Join(invalid, ", "))
			}
			if len(numbers) == 0 {
				return fmt.Errorf("no sticker numbers given")
			}

			owned, err := store.Load()
			if err != nil {
				return err
			}
			if !yes {
				numbers, err = confirmDuplicates(cmd, numbers, owned)
				if err != nil {
					return err
				}
			}
			if len(numbers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing added.")
				return nil
			}
			committed, err := store.Add(numbers)
			if err != nil {
				return err
			}
			for _, n := range numbers {
				fmt.Fprintf(cmd.OutOrStdout(), "Sticker %d: now owned %dx\n", n, committed[n])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "add duplicates without asking")

	return cmd
}

// parseNumbers splits a comma-separated list and validates the album range.
func parseNumbers(arg string, albumSize int) (numbers []int, invalid []string) {
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > albumSize {
			invalid = append(invalid, part)
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers, invalid
}

// confirmDuplicates asks once per already-owned number whether it should be
// counted again. Declined numbers are dropped from the submission.
func confirmDuplicates(cmd *cobra.Command, numbers []int, owned map[int]int) ([]int, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	kept := numbers[:0]
	seen := make(map[int]int)
	for _, n := range numbers {
		have := owned[n] + seen[n]
		if have == 0 {
			seen[n]++
			kept = append(kept, n)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "You already own sticker %d (%dx). Add as duplicate? [y/N] ", n, have)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// No interactive input available; skip the duplicate.
			fmt.Fprintln(cmd.OutOrStdout())
			continue
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "y" || answer == "yes" {
			seen[n]++
			kept = append(kept, n)
		}
	}
	return kept, nil
}
