package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"avmark/internal/captions"
	"avmark/internal/logging"
	"avmark/internal/timefmt"
)

func newSpeakersCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "speakers <captions>",
		Short: "Extract merged speaker segments from a caption track",
		Long: `Extract speaker segments from a WebVTT-style caption document.

Cues carrying a leading <v Name> voice tag are attributed to that speaker;
consecutive same-speaker cues that touch exactly on the timeline merge into
one segment. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.componentLogger("speakers")

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			segments := captions.ExtractSpeakerSegments(string(data))
			logger.Debug("extracted speaker segments",
				slog.String(logging.FieldInput, args[0]),
				slog.Int(logging.FieldCount, len(segments)))

			if jsonOutput || cfg.Output.Format == "json" {
				if segments == nil {
					segments = []captions.SpeakerSegment{}
				}
				return writeJSON(cmd, segments)
			}

			if len(segments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No speaker segments found")
				return nil
			}

			rows := make([][]string, 0, len(segments))
			for _, seg := range segments {
				rows = append(rows, []string{
					seg.Speaker,
					timefmt.Clock(seg.StartTime),
					timefmt.Clock(seg.EndTime),
				})
			}
			headers := []string{"Speaker", "Start", "End"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns, cfg.Output.Color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit segments as JSON")
	return cmd
}
