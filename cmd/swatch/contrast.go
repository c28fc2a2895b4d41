package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/preview"
)

type contrastOptions struct {
	jsonOutput bool
	preview    bool
}

func newContrastCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &contrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <source> <background>",
		Short: "Check a colour pair and suggest an accessible replacement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContrast(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the pair as swatches")

	return cmd
}

type contrastResult struct {
	Source          string  `json:"source"`
	Background      string  `json:"background"`
	Ratio           float64 `json:"ratio"`
	InBand          bool    `json:"in_band"`
	Accessible      string  `json:"accessible"`
	AccessibleRatio float64 `json:"accessible_ratio"`
}

func runContrast(cmd *cobra.Command, rootFlags *rootFlags, source, background string, opts *contrastOptions) error {
	ratio, err := colour.Contrast(source, background)
	if err != nil {
		return newCommandError("check contrast", fmt.Sprintf("%q on %q", source, background), err, "Pass colours as #rgb, #rrggbb or a basic colour name.")
	}

	accessible := colour.FindAccessibleColor(source, background)
	accessibleRatio, err := colour.Contrast(accessible, background)
	if err != nil {
		return newCommandError("check contrast", fmt.Sprintf("%q on %q", accessible, background), err, "Report this colour pair as a bug.")
	}

	result := contrastResult{
		Source:          source,
		Background:      background,
		Ratio:           round2(ratio),
		InBand:          colour.InBand(ratio),
		Accessible:      accessible,
		AccessibleRatio: round2(accessibleRatio),
	}

	if !colour.InBand(accessibleRatio) {
		rootFlags.log.Warn("no colour reaches the target contrast band", logger.Fields{"source": source, "background": background})
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOutput:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case opts.preview:
		fmt.Fprintln(out, preview.Contrast(source, accessible, background, preview.Options{Color: isTerminal(out)}))
		return nil
	}

	fmt.Fprintf(out, "Ratio:      %.2f:1\n", result.Ratio)
	fmt.Fprintf(out, "In band:    %t (%.1f to %.1f)\n", result.InBand, colour.MinContrast, colour.MaxContrast)
	fmt.Fprintf(out, "Accessible: %s (%.2f:1)\n", result.Accessible, result.AccessibleRatio)
	return nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
