package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/preview"
)

type scaleOptions struct {
	light      int
	dark       int
	jsonOutput bool
	preview    bool
}

func newScaleCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &scaleOptions{}

	cmd := &cobra.Command{
		Use:   "scale <name> <seed>",
		Short: "Generate a colour scale and its text scale from a seed colour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("light") {
				opts.light = rootFlags.settings.Scale.Light
			}
			if !cmd.Flags().Changed("dark") {
				opts.dark = rootFlags.settings.Scale.Dark
			}
			return runScale(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().IntVar(&opts.light, "light", 0, "Number of lighter steps before the seed (default from settings)")
	cmd.Flags().IntVar(&opts.dark, "dark", 0, "Number of darker steps after the seed (default from settings)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the scale as JSON")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the scale as swatches")

	return cmd
}

func runScale(cmd *cobra.Command, rootFlags *rootFlags, name, seed string, opts *scaleOptions) error {
	palette, err := colour.GenerateScale(name, seed, opts.light, opts.dark)
	if err != nil {
		return newCommandError("generate scale", fmt.Sprintf("%s from %q", name, seed), err, "Pass a #rgb or #rrggbb seed and non-negative step counts.")
	}

	rootFlags.log.Debug("scale generated", logger.Fields{"name": name, "seed": seed, "light": opts.light, "dark": opts.dark})

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOutput:
		return renderScaleJSON(cmd, palette)
	case opts.preview:
		fmt.Fprintln(out, preview.Palette(palette, preview.Options{Color: isTerminal(out)}))
		return nil
	default:
		renderScaleTable(cmd, palette)
		return nil
	}
}

func renderScaleTable(cmd *cobra.Command, palette colour.Palette) {
	out := cmd.OutOrStdout()
	for i, value := range palette.Scale.Values {
		text, _ := palette.Text.Index(i)
		fmt.Fprintf(out, "%s.%d\t%s\t%s\n", palette.Name, i-palette.Scale.Offset, value, text)
	}
}

type scaleJSONPayload struct {
	Name     string   `json:"name"`
	Offset   int      `json:"offset"`
	Values   []string `json:"values"`
	TextName string   `json:"text_name"`
	Text     []string `json:"text"`
}

func renderScaleJSON(cmd *cobra.Command, palette colour.Palette) error {
	payload := scaleJSONPayload{
		Name:     palette.Name,
		Offset:   palette.Scale.Offset,
		Values:   palette.Scale.Values,
		TextName: palette.TextName(),
		Text:     palette.Text.Values,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
