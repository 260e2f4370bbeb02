package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splicer/internal/calibrate"
	"splicer/internal/srt"
	"splicer/internal/worddiff"
)

func newRetimeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "retime <reference.srt> <candidate>",
		Short: "Re-time an edited transcript against its timed reference",
		Long: `Retime diffs the candidate transcript against the timed reference,
carries reference timing through unchanged words, and calibrates inserted
words into the gaps the edit left behind. The candidate may be an .srt file
or a plain text file split on whitespace.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := loadReference(args[0])
			if err != nil {
				return err
			}
			candidate, err := loadCandidate(args[1])
			if err != nil {
				return err
			}

			logger := ctx.loggerValue()
			records := worddiff.Compare(reference, candidate)
			calibrated := calibrate.Calibrate(records, ctx.configValue().CalibrateOptions())

			uncalibrated := 0
			for _, record := range calibrated {
				if record.Uncalibrated() {
					uncalibrated++
				}
			}
			logger.Info("retimed transcript",
				"reference_words", len(reference),
				"candidate_words", len(candidate),
				"records", len(calibrated),
				"uncalibrated", uncalibrated)

			words := worddiff.Words(calibrated)
			if outputPath != "" {
				if err := os.WriteFile(outputPath, srt.Format(words), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", len(words), outputPath)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderWords(words))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result as word-level SRT to this path")

	return cmd
}
