package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/theme"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestScaleCommandJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "scale", "brand", "#3b82f6", "--light", "2", "--dark", "1", "--json")
	require.NoError(t, err)

	var payload scaleJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))

	assert.Equal(t, "brand", payload.Name)
	assert.Equal(t, 2, payload.Offset)
	require.Len(t, payload.Values, 4)
	assert.Equal(t, "#3b82f6", payload.Values[2])
	assert.Equal(t, "brandText", payload.TextName)
	assert.Len(t, payload.Text, 4)
}

func TestScaleCommandUsesSettingsDefaults(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "scale", "brand", "#3b82f6", "--json")
	require.NoError(t, err)

	var payload scaleJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, theme.DefaultLightSteps, payload.Offset)
	assert.Len(t, payload.Values, theme.DefaultLightSteps+1+theme.DefaultDarkSteps)
}

func TestScaleCommandTable(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "scale", "brand", "#3b82f6", "--light", "1", "--dark", "1")
	require.NoError(t, err)

	assert.Contains(t, stdout, "brand.-1\t")
	assert.Contains(t, stdout, "brand.0\t#3b82f6\t")
	assert.Contains(t, stdout, "brand.1\t")
}

func TestScaleCommandPreview(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "scale", "brand", "#3b82f6", "--light", "1", "--dark", "1", "--preview")
	require.NoError(t, err)
	assert.Contains(t, stdout, "base")
	assert.Contains(t, stdout, "#3b82f6")
}

func TestScaleCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad seed", args: []string{"scale", "brand", "#12"}},
		{name: "negative steps", args: []string{"scale", "brand", "#3b82f6", "--light=-1"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)

			var cmdErr *commandError
			require.ErrorAs(t, err, &cmdErr)
			assert.Contains(t, err.Error(), "Suggestion:")

			var colourErr *swatcherrors.ColourError
			require.ErrorAs(t, err, &colourErr)
		})
	}
}

func TestScaleCommandRequiresArgs(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "scale", "brand")
	require.Error(t, err)
}
