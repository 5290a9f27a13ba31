package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"avmark/internal/logging"
	"avmark/internal/manifest"
	"avmark/internal/timefmt"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var labelLanguage string
	var yamlFlag bool

	cmd := &cobra.Command{
		Use:   "chapters <manifest>",
		Short: "Resolve a manifest's range tree into a chapter list",
		Long: `Resolve a manifest's range tree into a flat, time-sorted chapter list.

The manifest is read from a JSON file (or YAML when the extension is .yaml or
.yml, or --yaml is set). Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger := ctx.componentLogger("chapters")

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var m *manifest.Manifest
			if yamlFlag || yamlInput(args[0]) {
				m, err = manifest.DecodeYAML(bytes.NewReader(data))
			} else {
				m, err = manifest.DecodeJSON(bytes.NewReader(data))
			}
			if err != nil {
				return err
			}

			lang := labelLanguage
			if lang == "" {
				lang = cfg.Resolver.LabelLanguage
			}
			chapters := manifest.ResolveChaptersOptions(m, manifest.Options{Language: lang})
			logger.Debug("resolved manifest",
				slog.String(logging.FieldInput, args[0]),
				slog.Int(logging.FieldCount, len(chapters)))

			if jsonOutput || cfg.Output.Format == "json" {
				if chapters == nil {
					chapters = []manifest.Chapter{}
				}
				return writeJSON(cmd, chapters)
			}

			if len(chapters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No chapters resolved")
				return nil
			}

			rows := make([][]string, 0, len(chapters))
			for _, ch := range chapters {
				rows = append(rows, []string{
					ch.ID,
					ch.Label,
					timefmt.Clock(ch.StartTime),
					timefmt.Clock(ch.EndTime),
				})
			}
			headers := []string{"ID", "Label", "Start", "End"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns, cfg.Output.Color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit chapters as JSON")
	cmd.Flags().BoolVar(&yamlFlag, "yaml", false, "Force YAML manifest decoding")
	cmd.Flags().StringVar(&labelLanguage, "label-language", "", "Preferred label language tag (defaults to configuration)")
	return cmd
}
