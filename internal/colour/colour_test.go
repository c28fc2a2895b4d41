package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func mustParse(t *testing.T, value string) float64 {
	t.Helper()
	c, err := Parse(value)
	require.NoError(t, err)
	return Luminance(c)
}

func TestParseAcceptsHexAndNames(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"#ffffff", "#FFF", "fff", " White ", "ffffff"} {
		c, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, "#ffffff", Hex(c), input)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#ggg", "not-a-colour", "#1234567"} {
		_, err := Parse(input)
		require.Error(t, err, input)

		var colourErr *swatcherrors.ColourError
		require.ErrorAs(t, err, &colourErr, input)
	}
}

func TestContrastRatioExtremes(t *testing.T) {
	t.Parallel()

	ratio, err := Contrast("#000000", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)

	ratio, err = Contrast("#ffffff", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9, "ratio is symmetric")

	ratio, err = Contrast("#3b82f6", "#3b82f6")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestContrastRatioKnownPair(t *testing.T) {
	t.Parallel()

	ratio, err := Contrast("#767676", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 4.54, ratio, 0.01)
}

func TestIsDarkUsesBrightnessThreshold(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"#000000": true,
		"#ffffff": false,
		"#ff0000": true,
		"#ffff00": false,
		"#1e3a8a": true,
		"#eff6ff": false,
	}

	for input, dark := range tests {
		c, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, dark, IsDark(c), input)
		if dark {
			assert.Equal(t, TextWhite, TextColour(c), input)
		} else {
			assert.Equal(t, TextBlack, TextColour(c), input)
		}
	}
}

func TestLightness(t *testing.T) {
	t.Parallel()

	c, err := Parse("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, Lightness(c), 1e-9)
}
