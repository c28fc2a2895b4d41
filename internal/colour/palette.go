package colour

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/swatch/internal/scale"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// TextSuffix names the readability scale generated alongside a palette.
const TextSuffix = "Text"

// Palette is a colour scale ordered lightest to darkest together with the
// text colour that stays legible on each entry.
type Palette struct {
	Name  string
	Scale scale.Scale[string]
	Text  scale.Scale[string]
}

// TextName returns the key the text scale is registered under.
func (p Palette) TextName() string {
	return p.Name + TextSuffix
}

// Entries returns the palette keyed by name and its text scale keyed by
// name + "Text".
func (p Palette) Entries() map[string]scale.Scale[string] {
	return map[string]scale.Scale[string]{
		p.Name:       p.Scale,
		p.TextName(): p.Text,
	}
}

// GenerateScale derives a palette from seed with lightSteps lighter entries
// before the seed and darkSteps darker entries after it. The seed is kept
// verbatim at offset lightSteps.
//
// Lighter entries interpolate HSL lightness evenly towards white without
// reaching it. Darker entries step towards black using the same spacing,
// lightness/(lightSteps+1), so palettes that share a light step count share
// their dark spacing too.
func GenerateScale(name, seed string, lightSteps, darkSteps int) (Palette, error) {
	if lightSteps < 0 || darkSteps < 0 {
		return Palette{}, swatcherrors.NewColourError(seed, "step counts must not be negative", nil)
	}

	base, err := Parse(seed)
	if err != nil {
		return Palette{}, err
	}

	h, s, l := base.Hsl()
	lightness := l * 100
	divisor := float64(lightSteps + 1)

	colours := make([]colorful.Color, 0, lightSteps+1+darkSteps)
	values := make([]string, 0, cap(colours))

	for i := lightSteps; i >= 1; i-- {
		next := lightness + (100-lightness)*(float64(i)/divisor)
		c := colorful.Hsl(h, s, next/100)
		colours = append(colours, c)
		values = append(values, Hex(c))
	}

	colours = append(colours, base)
	values = append(values, seed)

	for i := 1; i <= darkSteps; i++ {
		next := lightness - lightness*(float64(i)/divisor)
		c := colorful.Hsl(h, s, next/100)
		colours = append(colours, c)
		values = append(values, Hex(c))
	}

	text := make([]string, len(colours))
	for i, c := range colours {
		text[i] = TextColour(c)
	}

	return Palette{
		Name:  name,
		Scale: scale.New(lightSteps, values...),
		Text:  scale.New(lightSteps, text...),
	}, nil
}
