package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splicer/internal/worddiff"
)

func newDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <reference.srt> <candidate>",
		Short: "Show how an edited transcript differs from its reference",
		Args:  cobra.ExactArgs(2),
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := loadReference(args[0])
			if err != nil {
				return err
			}
			candidate, err := loadCandidate(args[1])
			if err != nil {
				return err
			}

			records := worddiff.Compare(reference, candidate)
			colorize := shouldColorize(cmd.OutOrStdout())

			rows := make([][]string, len(records))
			added, removed := 0, 0
			for i, record := range records {
				switch record.Op {
				case worddiff.OpAdded:
					added++
				case worddiff.OpRemoved:
					removed++
				}
				span := record.Word.Span()
				rows[i] = []string{
					colorizeOp(record.Op.Marker(), record.Op, colorize),
					strconv.Itoa(record.Index),
					colorizeOp(record.Word.Text(), record.Op, colorize),
					strconv.Itoa(record.Word.Syllables()),
					formatMillis(span.Start.Millis()),
					formatMillis(span.End.Millis()),
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Op", "Index", "Word", "Syllables", "Start (ms)", "End (ms)"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d unchanged, %d added, %d removed\n",
				len(records)-added-removed, added, removed)
			return nil
		},
	}

	return cmd
}
