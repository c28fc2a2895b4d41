package theme

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/scale"
	"github.com/alexisbeaulieu97/swatch/internal/variant"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Resolve maps a token to a concrete value.
//
// A token that already has the shape of a scale resolves to its base entry.
// Otherwise the category is looked up: integer tokens (including integral
// floats and integer strings) address the category's default scale relative
// to its offset, "name" resolves to the base of a named scale and
// "name.step" to an offset-relative step within it. Anything else yields an
// UnresolvedTokenError so callers can fall back to the literal value.
func (t Theme) Resolve(categoryName string, token any) (any, error) {
	if s, ok := scale.FromValue(token); ok {
		value, ok := s.Base()
		if !ok {
			return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "scale has no base entry")
		}
		return value, nil
	}

	cat, ok := t.categories[categoryName]
	if !ok {
		return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "unknown category")
	}

	if step, ok := stepToken(token); ok {
		if !cat.hasDefault {
			return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "category has no default scale")
		}
		value, ok := cat.scale.At(step)
		if !ok {
			return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "step out of range")
		}
		return value, nil
	}

	text, ok := token.(string)
	if !ok {
		return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "unsupported token type")
	}

	name, step := splitNamedToken(text)
	s, ok := cat.named[name]
	if !ok {
		return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "unknown scale name")
	}
	value, ok := s.At(step)
	if !ok {
		return nil, swatcherrors.NewUnresolvedTokenError(categoryName, token, "step out of range")
	}
	return value, nil
}

// ResolveStyle resolves a style object against props. Variant fragments that
// match props are merged over the base properties, aliased properties are
// resolved through the theme and nested objects are walked recursively.
// Tokens that do not resolve keep their literal value. Variant prop errors
// are still returned because they indicate a broken component contract.
func (t Theme) ResolveStyle(style map[string]any, props map[string]any) (map[string]any, error) {
	return t.resolveStyle(style, props, nil)
}

// ResolveStyleStrict is ResolveStyle that also reports every token that
// failed to resolve, joined into one error.
func (t Theme) ResolveStyleStrict(style map[string]any, props map[string]any) (map[string]any, error) {
	var unresolved []error
	resolved, err := t.resolveStyle(style, props, &unresolved)
	if err != nil {
		return nil, err
	}
	if len(unresolved) > 0 {
		return resolved, errors.Join(unresolved...)
	}
	return resolved, nil
}

func (t Theme) resolveStyle(style map[string]any, props map[string]any, unresolved *[]error) (map[string]any, error) {
	active, err := variant.Select(style, props)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]any, len(style)+len(active))
	for key, value := range style {
		if variant.IsMetaKey(key) {
			continue
		}
		if _, _, ok := variant.ParseSelector(key); ok {
			continue
		}
		flat[key] = value
	}
	for key, value := range active {
		flat[key] = value
	}

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(flat))
	for _, key := range keys {
		value := flat[key]

		if nested, ok := nestedStyle(value); ok {
			resolved, err := t.resolveStyle(nested, props, unresolved)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
			continue
		}

		categoryName, ok := t.aliases[key]
		if !ok {
			out[key] = value
			continue
		}

		resolved, err := t.Resolve(categoryName, value)
		if err != nil {
			if unresolved != nil {
				*unresolved = append(*unresolved, err)
			}
			out[key] = value
			continue
		}
		out[key] = resolved
	}

	return out, nil
}

// nestedStyle recognises nested style objects such as pseudo-class blocks.
// Scale-shaped maps are tokens, not nested styles.
func nestedStyle(value any) (map[string]any, bool) {
	var nested map[string]any
	switch v := value.(type) {
	case map[string]any:
		nested = v
	case variant.Fragment:
		nested = v
	case variant.Style:
		nested = v
	default:
		return nil, false
	}
	if scale.IsScale(nested) {
		return nil, false
	}
	return nested, true
}

// stepToken reports whether token is an integer step.
func stepToken(token any) (int, bool) {
	switch v := token.(type) {
	case string:
		step, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return step, true
	case nil, bool:
		return 0, false
	}

	rv := reflect.ValueOf(token)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// splitNamedToken splits "name.step" into its parts. A token without a
// numeric suffix addresses the base entry.
func splitNamedToken(token string) (string, int) {
	dot := strings.LastIndex(token, ".")
	if dot <= 0 {
		return token, 0
	}
	step, err := strconv.Atoi(token[dot+1:])
	if err != nil {
		return token, 0
	}
	return token[:dot], step
}
