package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splicer/internal/word"
)

func newPausesCommand() *cobra.Command {
	var minDurationMs int64

	cmd := &cobra.Command{
		Use:   "pauses <reference.srt>",
		Short: "List the silent gaps between consecutive words",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadReference(args[0])
			if err != nil {
				return err
			}

			pauses := word.Pauses(words)
			rows := make([][]string, 0, len(pauses))
			for i, pause := range pauses {
				if pause.Duration() < minDurationMs {
					continue
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					pause.Start.String(),
					pause.End.String(),
					formatMillis(pause.Duration()),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Start", "End", "Duration (ms)"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d pauses across %d words\n", len(rows), len(words))
			return nil
		},
	}

	cmd.Flags().Int64Var(&minDurationMs, "min-duration", 0, "Only show pauses at least this many milliseconds long")

	return cmd
}
