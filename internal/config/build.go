package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/scale"
	"github.com/alexisbeaulieu97/swatch/internal/theme"
	"github.com/alexisbeaulieu97/swatch/internal/variant"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Components maps component names to their composed style objects.
type Components map[string]variant.Style

// Build turns a validated theme file into a theme and its component styles.
func Build(file *ThemeFile) (theme.Theme, Components, error) {
	if file == nil {
		return theme.Theme{}, nil, swatcherrors.NewValidationError("theme", "theme file is nil", nil)
	}

	base := theme.New(file.Name)
	if file.Extends == "default" {
		base = theme.Default()
	}

	opts := []theme.Option{theme.WithName(file.Name)}

	for _, name := range sortedKeys(file.Scales) {
		spec := file.Scales[name]
		opts = append(opts, theme.WithScale(name, scale.New(spec.Offset, spec.Values...)))
	}

	for _, categoryName := range sortedKeys(file.Named) {
		named := file.Named[categoryName]
		for _, name := range sortedKeys(named) {
			spec := named[name]
			opts = append(opts, theme.WithNamedScale(categoryName, name, scale.New(spec.Offset, spec.Values...)))
		}
	}

	for i, spec := range file.Palettes {
		palette, err := colour.GenerateScale(spec.Name, spec.Seed, spec.Light, spec.Dark)
		if err != nil {
			return theme.Theme{}, nil, swatcherrors.NewValidationError(fieldForPalette(i, "seed"), err.Error(), err)
		}
		opts = append(opts, theme.WithPalette(palette))
	}

	for _, property := range sortedKeys(file.Aliases) {
		opts = append(opts, theme.WithAlias(property, file.Aliases[property]))
	}

	components := make(Components, len(file.Components))
	for _, name := range sortedKeys(file.Components) {
		style, err := composeComponent(name, file.Components[name])
		if err != nil {
			return theme.Theme{}, nil, err
		}
		components[name] = style
	}

	return base.With(opts...), components, nil
}

func composeComponent(name string, spec ComponentSpec) (variant.Style, error) {
	styles := make([]variant.Style, 0, len(spec.Variants)+1)

	base := make(variant.Style, len(spec.Base))
	for key, value := range spec.Base {
		base[key] = value
	}
	styles = append(styles, base)

	for i, v := range spec.Variants {
		fragments := make(map[string]variant.Fragment, len(v.Fragments))
		for value, fragment := range v.Fragments {
			fragments[value] = variant.Fragment(fragment)
		}

		composed, err := variant.ComposeValues(v.Dimension, v.Required, v.Allowed, fragments)
		if err != nil {
			return nil, swatcherrors.NewValidationError(fieldForVariant(name, i, "fragments"), err.Error(), err)
		}
		styles = append(styles, composed)
	}

	return variant.Merge(styles...), nil
}

// Style resolves a named component against props.
func (c Components) Style(t theme.Theme, name string, props map[string]any) (map[string]any, error) {
	style, ok := c[name]
	if !ok {
		return nil, swatcherrors.NewConfigError(name, fmt.Sprintf("unknown component (have %d)", len(c)))
	}
	return t.ResolveStyle(style, props)
}
