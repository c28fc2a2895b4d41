package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("ocean.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ocean.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ocean.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palettes[0].seed", "must be a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palettes[0].seed", validationErr.Field)
	require.Contains(t, err.Error(), "must be a hex colour")
}

func TestColourErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad hex")
	err := NewColourError("#zzz", "cannot parse colour", underlying)

	var colourErr *ColourError
	require.ErrorAs(t, err, &colourErr)
	require.Equal(t, "#zzz", colourErr.Colour)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestVariantErrorNamesDimensionAndValue(t *testing.T) {
	t.Parallel()

	err := NewVariantError("size", "xl", "value is not allowed")
	require.Equal(t, `variant error [size="xl"]: value is not allowed`, err.Error())

	err = NewVariantError("size", "", "no allowed values")
	require.Equal(t, "variant error [size]: no allowed values", err.Error())
}

func TestConfigErrorFormatting(t *testing.T) {
	t.Parallel()

	err := NewConfigError("size", "required variant prop is missing")
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "config error: size: required variant prop is missing", err.Error())
}

func TestUnresolvedTokenErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("resolve padding: %w", NewUnresolvedTokenError("space", 9, "step out of range"))

	require.True(t, stdErrors.Is(err, ErrUnresolvedToken))

	var unresolved *UnresolvedTokenError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "space", unresolved.Category)
	require.Equal(t, 9, unresolved.Token)
	require.Contains(t, err.Error(), "step out of range")
}
