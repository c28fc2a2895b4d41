package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// ValidateThemeFile performs schema and cross-field validation on a theme file.
func ValidateThemeFile(file *ThemeFile) error {
	if file == nil {
		return swatcherrors.NewValidationError("theme", "theme file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	for _, name := range sortedKeys(file.Scales) {
		if err := validateScaleSpec(fmt.Sprintf("scales.%s", name), file.Scales[name]); err != nil {
			return err
		}
	}

	for _, categoryName := range sortedKeys(file.Named) {
		named := file.Named[categoryName]
		for _, name := range sortedKeys(named) {
			if err := validateScaleSpec(fmt.Sprintf("named.%s.%s", categoryName, name), named[name]); err != nil {
				return err
			}
		}
	}

	seen := make(map[string]int, len(file.Palettes))
	for i, palette := range file.Palettes {
		if first, exists := seen[palette.Name]; exists {
			return swatcherrors.NewValidationError(fieldForPalette(i, "name"), fmt.Sprintf("duplicate palette %q (first declared at palettes[%d])", palette.Name, first), nil)
		}
		if strings.HasSuffix(palette.Name, colour.TextSuffix) {
			return swatcherrors.NewValidationError(fieldForPalette(i, "name"), fmt.Sprintf("palette names must not end in %q", colour.TextSuffix), nil)
		}
		seen[palette.Name] = i
	}

	for _, name := range sortedKeys(file.Components) {
		component := file.Components[name]
		dimensions := make(map[string]struct{}, len(component.Variants))
		for i, spec := range component.Variants {
			if _, exists := dimensions[spec.Dimension]; exists {
				return swatcherrors.NewValidationError(fieldForVariant(name, i, "dimension"), fmt.Sprintf("duplicate variant dimension %q", spec.Dimension), nil)
			}
			dimensions[spec.Dimension] = struct{}{}
		}
	}

	return nil
}

func validateScaleSpec(field string, spec ScaleSpec) error {
	if spec.Offset >= len(spec.Values) {
		return swatcherrors.NewValidationError(field+".offset", fmt.Sprintf("offset %d is outside %d values", spec.Offset, len(spec.Values)), nil)
	}
	return nil
}

// convertValidationError normalizes validator errors into swatch validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPalette(index int, field string) string {
	return fmt.Sprintf("palettes[%d].%s", index, field)
}

func fieldForVariant(component string, index int, field string) string {
	return fmt.Sprintf("components.%s.variants[%d].%s", component, index, field)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
