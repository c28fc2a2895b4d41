package theme

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/scale"
)

// DefaultName is the name of the stock theme.
const DefaultName = "default"

// Palette seed colours of the stock theme. Each seed becomes the 500 shade
// of a ten entry scale.
var defaultSeeds = []struct {
	name string
	seed string
}{
	{name: "primary", seed: "#3b82f6"},
	{name: "secondary", seed: "#a855f7"},
	{name: "success", seed: "#22c55e"},
	{name: "warning", seed: "#eab308"},
	{name: "danger", seed: "#ef4444"},
	{name: "info", seed: "#06b6d4"},
	{name: "neutral", seed: "#64748b"},
}

// Stock palette shape: five lighter shades, the seed, four darker shades.
const (
	DefaultLightSteps = 5
	DefaultDarkSteps  = 4
)

// Default returns the stock theme. Every call builds a fresh value.
func Default() Theme {
	opts := []Option{
		WithScale(CategorySpace, scale.New(0, 0, 4, 8, 16, 32, 64, 128, 256, 512)),
		WithScale(CategoryFontSizes, scale.New(2, 12, 14, 16, 20, 24, 32, 48, 64, 72)),
		WithScale(CategoryFontWeights, scale.New(1, 300, 400, 500, 600, 700)),
		WithScale(CategoryLineHeights, scale.New(1, 1.25, 1.5, 1.75, 2.0)),
		WithScale(CategoryRadii, scale.New(0, 0, 2, 4, 8, 16, 9999)),
		WithScale(CategorySizes, scale.New(0, 0, 16, 32, 64, 128, 256, 512, 768, 1024)),
		WithScale(CategoryBreakpoints, scale.New(0, "40em", "52em", "64em", "80em")),
		WithNamedScale(CategoryColors, "base", scale.New(0, "#ffffff", "#000000")),
	}

	for _, entry := range defaultSeeds {
		opts = append(opts, WithPalette(mustPalette(entry.name, entry.seed)))
	}

	return New(DefaultName, opts...)
}

func mustPalette(name, seed string) colour.Palette {
	palette, err := colour.GenerateScale(name, seed, DefaultLightSteps, DefaultDarkSteps)
	if err != nil {
		panic(fmt.Sprintf("theme: stock palette %s: %v", name, err))
	}
	return palette
}
