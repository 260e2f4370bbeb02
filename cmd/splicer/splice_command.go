package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splicer/internal/srt"
	"splicer/internal/syllable"
	"splicer/internal/word"
)

func newSpliceCommand(ctx *commandContext) *cobra.Command {
	var weighting string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "splice <reference.srt> <word>...",
		Short: "Spread replacement words across a reference span",
		Long: `Splice throws away the reference text and lays the replacement words
across its full span, sharing the time by syllable count, character count, or
evenly.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := loadReference(args[0])
			if err != nil {
				return err
			}
			texts := args[1:]

			mode := weighting
			if mode == "" {
				mode = ctx.configValue().Splice.Weighting
			}

			var spliced []word.Word
			switch mode {
			case "even":
				spliced, err = word.SpliceEvenly(reference, texts)
			case "chars":
				spliced, err = word.SpliceByCharacters(reference, texts)
			case "syllables":
				spliced, err = word.SpliceBySyllables(reference, texts, syllable.Estimate)
			default:
				return fmt.Errorf("unknown weighting %q (expected syllables, chars, or even)", mode)
			}
			if err != nil {
				return err
			}

			ctx.loggerValue().Info("spliced words",
				"reference_words", len(reference),
				"spliced_words", len(spliced),
				"weighting", mode)

			if outputPath != "" {
				if err := os.WriteFile(outputPath, srt.Format(spliced), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(spliced), outputPath)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderWords(spliced))
			return nil
		},
	}

	cmd.Flags().StringVarP(&weighting, "weighting", "w", "", "Time weighting: syllables, chars, or even (defaults to configuration)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result as word-level SRT to this path")

	return cmd
}
