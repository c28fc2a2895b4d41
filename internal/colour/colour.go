// Package colour derives palettes and legible colour pairs from seed colours.
//
// All colour maths runs on 8-bit sRGB values so every reported contrast
// ratio matches the hex string that is returned to the caller.
package colour

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Text colour tokens used by text scales.
const (
	TextWhite = "white"
	TextBlack = "black"
)

// brightnessThreshold is the YIQ brightness below which a colour is dark.
const brightnessThreshold = 128

var namedColours = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"purple":  "#800080",
	"teal":    "#008080",
	"navy":    "#000080",
	"orange":  "#ffa500",
}

// Parse reads a hex colour (#rgb or #rrggbb, '#' optional) or a basic CSS
// colour name.
func Parse(value string) (colorful.Color, error) {
	raw := strings.ToLower(strings.TrimSpace(value))
	if named, ok := namedColours[raw]; ok {
		raw = named
	}
	if raw != "" && !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	if len(raw) != 4 && len(raw) != 7 {
		return colorful.Color{}, swatcherrors.NewColourError(value, "expected #rgb or #rrggbb", nil)
	}

	c, err := colorful.Hex(raw)
	if err != nil {
		return colorful.Color{}, swatcherrors.NewColourError(value, "cannot parse colour", err)
	}
	return c, nil
}

// Hex formats c as a lowercase #rrggbb string.
func Hex(c colorful.Color) string {
	return quantise(c).Hex()
}

// Luminance returns the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	r, g, b := quantise(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colours,
// from 1 (identical luminance) to 21 (black on white).
func ContrastRatio(a, b colorful.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Contrast parses both colours and returns their contrast ratio.
func Contrast(foreground, background string) (float64, error) {
	fg, err := Parse(foreground)
	if err != nil {
		return 0, err
	}
	bg, err := Parse(background)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(fg, bg), nil
}

// Brightness returns the YIQ perceived brightness of c in [0, 255].
func Brightness(c colorful.Color) float64 {
	r, g, b := quantise(c).RGB255()
	return (299*float64(r) + 587*float64(g) + 114*float64(b)) / 1000
}

// IsDark reports whether c reads as a dark background.
func IsDark(c colorful.Color) bool {
	return Brightness(c) < brightnessThreshold
}

// TextColour returns the text token that stays legible on background c.
func TextColour(c colorful.Color) string {
	if IsDark(c) {
		return TextWhite
	}
	return TextBlack
}

// Lightness returns the HSL lightness of c on a 0-100 scale.
func Lightness(c colorful.Color) float64 {
	_, _, l := c.Hsl()
	return l * 100
}

// quantise snaps c to the nearest 8-bit sRGB colour.
func quantise(c colorful.Color) colorful.Color {
	r, g, b := c.Clamped().RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
