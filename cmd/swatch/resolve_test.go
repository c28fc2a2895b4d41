package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

const brandTheme = `name: brand
extends: default
scales:
  space: {offset: 0, values: [0, 2, 6, 12, 24]}
palettes:
  - {name: accent, seed: "#3b82f6", light: 2, dark: 2}
components:
  button:
    base:
      padding: 2
      bg: accent
      border: 1px solid
    variants:
      - dimension: size
        required: true
        allowed: [sm, lg]
        fragments:
          sm: {padding: 1}
          lg: {padding: 4}
`

func writeBrandTheme(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(brandTheme), 0o644))
	return path
}

func TestResolveCommandStockTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category string
		token    string
		want     string
	}{
		{category: "space", token: "3", want: "16"},
		{category: "fontSizes", token: "0", want: "16"},
		{category: "colors", token: "primary", want: "#3b82f6"},
		{category: "colors", token: "base.1", want: "#000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.category+"/"+tt.token, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, "resolve", tt.category, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestResolveCommandThemeFileJSON(t *testing.T) {
	t.Parallel()

	path := writeBrandTheme(t)
	stdout, _, err := execute(t, "resolve", "space", "2", "--theme", path, "--json")
	require.NoError(t, err)

	var payload resolveJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	assert.Equal(t, "brand", payload.Theme)
	assert.Equal(t, float64(6), payload.Value)
}

func TestResolveCommandUnknownToken(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "resolve", "colors", "mauve")
	require.Error(t, err)
	assert.ErrorIs(t, err, swatcherrors.ErrUnresolvedToken)
	assert.Contains(t, err.Error(), "Known categories")
}

func TestResolveCommandBadThemeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: broken\npalettes:\n  - {name: x, seed: nope}\n"), 0o644))

	_, _, err := execute(t, "resolve", "space", "1", "--theme", path)
	require.Error(t, err)

	var valErr *swatcherrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}
