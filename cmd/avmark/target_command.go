package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"avmark/internal/fragment"
)

func newTargetCommand(ctx *commandContext) *cobra.Command {
	var fragmentOnly bool
	var referenceInput bool

	cmd := &cobra.Command{
		Use:   "target <uri>",
		Short: "Parse a target URI, fragment body, or structured reference",
		Long: `Parse a media target and print the result as JSON.

By default the argument is a URI whose fragment is inspected for t= and
xywh= locators. With --fragment the argument is a bare fragment body; with
--reference it is a JSON SpecificResource object (use "-" to read the JSON
from stdin). An unusable input prints null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.componentLogger("target")

			var target *fragment.Target
			switch {
			case fragmentOnly:
				body := args[0]
				target = &fragment.Target{
					Temporal: fragment.ParseTemporal(body),
					Spatial:  fragment.ParseSpatial(body),
				}
			case referenceInput:
				raw := []byte(args[0])
				if strings.TrimSpace(args[0]) == "-" {
					data, err := readInput(cmd, args[0])
					if err != nil {
						return err
					}
					raw = data
				}
				var ref fragment.Reference
				if err := json.Unmarshal(raw, &ref); err != nil {
					return fmt.Errorf("decode reference: %w", err)
				}
				target = fragment.ParseTarget(ref)
			default:
				target = fragment.ParseTarget(args[0])
			}

			logger.Debug("parsed target",
				slog.Bool("resolved", target != nil))
			return writeJSON(cmd, target)
		},
	}

	cmd.Flags().BoolVar(&fragmentOnly, "fragment", false, "Treat the argument as a bare fragment body")
	cmd.Flags().BoolVar(&referenceInput, "reference", false, "Treat the argument as a JSON SpecificResource")
	return cmd
}
