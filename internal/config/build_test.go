package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/theme"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func buildBrand(t *testing.T) (theme.Theme, Components) {
	t.Helper()
	file, err := ParseThemeFile(filepath.Join("testdata", "brand.yaml"))
	require.NoError(t, err)
	built, components, err := Build(file)
	require.NoError(t, err)
	return built, components
}

func TestBuildExtendsDefaultTheme(t *testing.T) {
	t.Parallel()

	built, _ := buildBrand(t)
	assert.Equal(t, "brand", built.Name())

	value, err := built.Resolve(theme.CategorySpace, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, value)

	// untouched stock categories survive
	value, err = built.Resolve(theme.CategoryFontSizes, 0)
	require.NoError(t, err)
	assert.Equal(t, 16, value)

	value, err = built.Resolve(theme.CategoryColors, "primary")
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", value)
}

func TestBuildRegistersNamedScalesPalettesAndAliases(t *testing.T) {
	t.Parallel()

	built, _ := buildBrand(t)

	value, err := built.Resolve(theme.CategoryColors, "ink.1")
	require.NoError(t, err)
	assert.Equal(t, "#333333", value)

	palette, err := colour.GenerateScale("accent", "#3b82f6", 2, 2)
	require.NoError(t, err)

	value, err = built.Resolve(theme.CategoryColors, "accent.-2")
	require.NoError(t, err)
	assert.Equal(t, palette.Scale.Values[0], value)

	text, err := built.Resolve(theme.CategoryColors, "accentText")
	require.NoError(t, err)
	expected, _ := palette.Text.Base()
	assert.Equal(t, expected, text)

	category, ok := built.Alias("tint")
	require.True(t, ok)
	assert.Equal(t, theme.CategoryColors, category)
}

func TestBuildWithoutExtendsStartsEmpty(t *testing.T) {
	t.Parallel()

	file, err := ParseTheme("inline", []byte("name: bare\nscales:\n  space: {offset: 0, values: [0, 1]}\n"))
	require.NoError(t, err)

	built, components, err := Build(file)
	require.NoError(t, err)
	assert.Empty(t, components)

	_, err = built.Resolve(theme.CategoryColors, "primary")
	assert.ErrorIs(t, err, swatcherrors.ErrUnresolvedToken)

	value, err := built.Resolve(theme.CategorySpace, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestBuildRejectsFragmentOutsideAllowed(t *testing.T) {
	t.Parallel()

	file, err := ParseTheme("inline", []byte(`
name: x
components:
  chip:
    variants:
      - dimension: size
        allowed: [sm]
        fragments:
          xl: {padding: 4}
`))
	require.NoError(t, err)

	_, _, err = Build(file)
	var valErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "components.chip.variants[0].fragments", valErr.Field)

	var variantErr *swatcherrors.VariantError
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, "xl", variantErr.Value)
}

func TestComponentsStyle(t *testing.T) {
	t.Parallel()

	built, components := buildBrand(t)
	palette, err := colour.GenerateScale("accent", "#3b82f6", 2, 2)
	require.NoError(t, err)

	resolved, err := components.Style(built, "button", map[string]any{"size": "lg"})
	require.NoError(t, err)
	assert.Equal(t, 24, resolved["padding"])
	assert.Equal(t, 32, resolved["fontSize"])
	assert.Equal(t, "#3b82f6", resolved["bg"])

	resolved, err = components.Style(built, "button", map[string]any{"size": "sm", "tone": "muted"})
	require.NoError(t, err)
	assert.Equal(t, 2, resolved["padding"])
	assert.Equal(t, palette.Scale.Values[1], resolved["bg"])

	_, err = components.Style(built, "button", map[string]any{})
	var cfgErr *swatcherrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "size", cfgErr.Key)

	_, err = components.Style(built, "card", nil)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "card", cfgErr.Key)
}

func TestBuildNil(t *testing.T) {
	t.Parallel()

	_, _, err := Build(nil)
	var valErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}
