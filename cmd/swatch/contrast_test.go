package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
)

func TestContrastCommandJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "contrast", "#000000", "#ffffff", "--json")
	require.NoError(t, err)

	var result contrastResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.Equal(t, 21.0, result.Ratio)
	assert.False(t, result.InBand)
	assert.NotEqual(t, "#000000", result.Accessible)
	assert.True(t, colour.InBand(result.AccessibleRatio))
}

func TestContrastCommandKeepsColourAlreadyInBand(t *testing.T) {
	t.Parallel()

	source := colour.FindAccessibleColor("#000000", "#ffffff")

	stdout, _, err := execute(t, "contrast", source, "#ffffff", "--json")
	require.NoError(t, err)

	var result contrastResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.True(t, result.InBand)
	assert.Equal(t, source, result.Accessible)
}

func TestContrastCommandText(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "contrast", "#777777", "white")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Ratio:")
	assert.Contains(t, stdout, "In band:    false")
	assert.Contains(t, stdout, "Accessible: #")
}

func TestContrastCommandRejectsBadColour(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "contrast", "chartreuse-ish", "#ffffff")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
}
