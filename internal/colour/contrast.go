package colour

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Accepted contrast band for body text: at least WCAG AA, capped so the
// result stays close to the source colour.
const (
	MinContrast = 4.5
	MaxContrast = 5.0
)

// InBand reports whether ratio falls inside [MinContrast, MaxContrast].
func InBand(ratio float64) bool {
	return ratio >= MinContrast && ratio <= MaxContrast
}

// FindAccessibleColor returns a colour with the hue of source whose contrast
// against background is within the accepted band.
//
// A source that already satisfies the band is returned unchanged. Otherwise
// saturation is walked from 100 down to 0 and, for each saturation,
// lightness from 0 up to 100; the first match wins. When nothing matches,
// or either colour cannot be parsed, source is returned as given.
func FindAccessibleColor(source, background string) string {
	src, err := Parse(source)
	if err != nil {
		return source
	}
	bg, err := Parse(background)
	if err != nil {
		return source
	}

	if InBand(ContrastRatio(src, bg)) {
		return source
	}

	hue, _, _ := src.Hsl()
	for saturation := 100; saturation >= 0; saturation-- {
		for lightness := 0; lightness <= 100; lightness++ {
			candidate := quantise(colorful.Hsl(hue, float64(saturation)/100, float64(lightness)/100))
			if InBand(ContrastRatio(candidate, bg)) {
				return candidate.Hex()
			}
		}
	}

	return source
}
