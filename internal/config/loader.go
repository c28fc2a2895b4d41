package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/theme"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Loaded is a theme built from a file together with its components.
type Loaded struct {
	Path       string
	Theme      theme.Theme
	Components Components
}

// Loader reads theme files from disk and builds them.
type Loader struct {
	log *logger.Logger
}

// NewLoader returns a Loader that reports progress to log. A nil logger is
// allowed.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load parses, validates and builds the theme file at path. An empty path
// yields the default theme with no components.
func (l *Loader) Load(ctx context.Context, path string) (*Loaded, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	if path == "" {
		l.log.Debug("no theme file configured, using default theme")
		return &Loaded{Theme: theme.Default(), Components: Components{}}, nil
	}

	if err := checkThemePath(path); err != nil {
		l.log.Error(err, "theme path rejected", logger.Fields{"path": path})
		return nil, err
	}

	l.log.Debug("loading theme file", logger.Fields{"path": path})

	file, err := ParseThemeFile(path)
	if err != nil {
		l.log.Error(err, "failed to parse theme file", logger.Fields{"path": path})
		return nil, err
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	built, components, err := Build(file)
	if err != nil {
		l.log.Error(err, "failed to build theme", logger.Fields{"path": path})
		return nil, err
	}

	l.log.Info("theme loaded", logger.Fields{
		"path":       path,
		"theme":      built.Name(),
		"palettes":   len(file.Palettes),
		"components": len(components),
	})

	return &Loaded{Path: path, Theme: built, Components: components}, nil
}

func checkThemePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return swatcherrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return swatcherrors.NewValidationError("theme.file", "theme path is a directory", nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return nil
	default:
		return swatcherrors.NewValidationError("theme.file", "unsupported theme file extension "+ext, nil)
	}
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
