package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"splicer/internal/romanize"
	"splicer/internal/syllable"
)

func newRomanizeCommand() *cobra.Command {
	var showSyllables bool

	cmd := &cobra.Command{
		Use:   "romanize <word>...",
		Short: "Strip accents and fold words to plain ASCII letters",
		Args:  cobra.MinimumNArgs(1),
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			romanized := romanize.Words(args)
			if !showSyllables {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(romanized, " "))
				return nil
			}

			rows := make([][]string, len(args))
			for i, original := range args {
				rows[i] = []string{
					original,
					romanized[i],
					strconv.Itoa(syllable.Estimate(romanized[i])),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Input", "Romanized", "Syllables"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showSyllables, "syllables", "s", false, "Also show the estimated syllable count")

	return cmd
}
