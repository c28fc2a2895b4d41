package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/theme"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestLoaderLoadsThemeFile(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	loaded, err := NewLoader(log).Load(context.Background(), filepath.Join("testdata", "brand.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "brand", loaded.Theme.Name())
	assert.Contains(t, loaded.Components, "button")
	assert.Contains(t, buf.String(), "theme loaded")
}

func TestLoaderEmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	loaded, err := NewLoader(nil).Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultName, loaded.Theme.Name())
	assert.Empty(t, loaded.Components)
}

func TestLoaderRejectsBadPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "theme.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0o644))

	loader := NewLoader(logger.Nop())

	var valErr *swatcherrors.ValidationError
	_, err := loader.Load(context.Background(), dir)
	require.ErrorAs(t, err, &valErr)

	_, err = loader.Load(context.Background(), jsonPath)
	require.ErrorAs(t, err, &valErr)

	var parseErr *swatcherrors.ParseError
	_, err = loader.Load(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &parseErr)
}

func TestLoaderHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, filepath.Join("testdata", "brand.yaml"))
	require.ErrorIs(t, err, context.Canceled)
}
