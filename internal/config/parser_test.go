package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseThemeFileValid(t *testing.T) {
	t.Parallel()

	file, err := ParseThemeFile(filepath.Join("testdata", "brand.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "brand", file.Name)
	assert.Equal(t, "default", file.Extends)
	require.Len(t, file.Palettes, 1)
	assert.Equal(t, "accent", file.Palettes[0].Name)
	assert.Equal(t, 2, file.Palettes[0].Light)
	assert.Equal(t, 1, file.Named["colors"]["ink"].Offset)
	require.Contains(t, file.Components, "button")
	assert.Len(t, file.Components["button"].Variants, 2)
}

func TestParseThemeFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseThemeFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseThemeRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme("inline", []byte("name: x\ncolours: {}\n"))
	require.Error(t, err)

	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseThemeRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme("inline", nil)

	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, "empty")
}

func TestParseThemeMalformedYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "name: x\npalettes:\n  - name: [unterminated\n")
	_, err := ParseThemeFile(path)

	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}
