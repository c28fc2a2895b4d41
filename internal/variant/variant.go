// Package variant packages per-value style fragments for a closed-set
// style dimension, such as a button size, into a single style object.
//
// Compose only records which fragment belongs to which value; the active
// fragment is chosen later, by Select or by a theme resolving the style
// against a component's props.
package variant

import (
	"fmt"
	"sort"
	"strings"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

const metaPrefix = "@variant:"

// Fragment is a style object applied when a variant value is active.
type Fragment map[string]any

// Style is a composed style object. Fragments are keyed by Selector and each
// dimension's Definition is kept under its MetaKey.
type Style map[string]any

// Definition describes a variant dimension and the values it accepts.
type Definition struct {
	Dimension string
	Required  bool
	Allowed   []string
}

// Allows reports whether value is one of the allowed values.
func (d Definition) Allows(value string) bool {
	for _, allowed := range d.Allowed {
		if allowed == value {
			return true
		}
	}
	return false
}

// Validate checks that the definition names a dimension and at least one
// allowed value.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Dimension) == "" {
		return swatcherrors.NewVariantError(d.Dimension, "", "dimension name is required")
	}
	if len(d.Allowed) == 0 {
		return swatcherrors.NewVariantError(d.Dimension, "", "at least one allowed value is required")
	}
	return nil
}

// Selector returns the conditional key under which the fragment for
// dimension=value is stored.
func Selector(dimension, value string) string {
	return fmt.Sprintf("[%s=%q]", dimension, value)
}

// ParseSelector splits a key produced by Selector.
func ParseSelector(key string) (dimension, value string, ok bool) {
	if !strings.HasPrefix(key, "[") || !strings.HasSuffix(key, "\"]") {
		return "", "", false
	}
	body := key[1 : len(key)-1]
	eq := strings.Index(body, "=")
	if eq <= 0 {
		return "", "", false
	}
	dimension = body[:eq]
	quoted := body[eq+1:]
	if _, err := fmt.Sscanf(quoted, "%q", &value); err != nil {
		return "", "", false
	}
	if Selector(dimension, value) != key {
		return "", "", false
	}
	return dimension, value, true
}

// MetaKey returns the key under which a dimension's Definition is stored.
func MetaKey(dimension string) string {
	return metaPrefix + dimension
}

// IsMetaKey reports whether key holds a Definition.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, metaPrefix)
}

// Compose builds a style object holding one fragment per value. Every
// fragment key must be an allowed value; otherwise a VariantError is
// returned and nothing is composed.
func Compose(def Definition, fragments map[string]Fragment) (Style, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(fragments))
	for value := range fragments {
		values = append(values, value)
	}
	sort.Strings(values)

	for _, value := range values {
		if !def.Allows(value) {
			return nil, swatcherrors.NewVariantError(def.Dimension, value, "value is not in the allowed set")
		}
	}

	style := make(Style, len(fragments)+1)
	for _, value := range values {
		style[Selector(def.Dimension, value)] = fragments[value].Clone()
	}
	style[MetaKey(def.Dimension)] = Definition{
		Dimension: def.Dimension,
		Required:  def.Required,
		Allowed:   append([]string(nil), def.Allowed...),
	}
	return style, nil
}

// ComposeValues is Compose with the definition spelled out.
func ComposeValues(dimension string, required bool, allowed []string, fragments map[string]Fragment) (Style, error) {
	return Compose(Definition{Dimension: dimension, Required: required, Allowed: allowed}, fragments)
}

// Merge combines composed styles into one. Later styles win on key clashes.
func Merge(styles ...Style) Style {
	merged := Style{}
	for _, style := range styles {
		for key, value := range style {
			merged[key] = value
		}
	}
	return merged
}

// Definitions returns the definitions recorded in style ordered by dimension.
func Definitions(style map[string]any) []Definition {
	defs := make([]Definition, 0)
	for key, value := range style {
		if !IsMetaKey(key) {
			continue
		}
		if def, ok := value.(Definition); ok {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Dimension < defs[j].Dimension })
	return defs
}

// Select returns the fragments that apply to props, merged in dimension
// order. A required dimension without a prop, or a prop outside the allowed
// set, is a ConfigError. An optional dimension without a prop contributes
// nothing.
func Select(style map[string]any, props map[string]any) (Fragment, error) {
	selected := Fragment{}
	for _, def := range Definitions(style) {
		raw, present := props[def.Dimension]
		if !present || raw == nil || raw == "" {
			if def.Required {
				return nil, swatcherrors.NewConfigError(def.Dimension, "required variant prop is missing")
			}
			continue
		}

		value := fmt.Sprint(raw)
		if !def.Allows(value) {
			return nil, swatcherrors.NewConfigError(def.Dimension, fmt.Sprintf("%q is not one of %s", value, strings.Join(def.Allowed, ", ")))
		}

		fragment, ok := style[Selector(def.Dimension, value)].(Fragment)
		if !ok {
			continue
		}
		for key, v := range fragment {
			selected[key] = v
		}
	}
	return selected, nil
}

// Clone returns a shallow copy of f.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return Fragment{}
	}
	out := make(Fragment, len(f))
	for key, value := range f {
		out[key] = value
	}
	return out
}
