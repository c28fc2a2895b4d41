// Package props derives shadow attributes from component property bags.
package props

import (
	"math"
	"reflect"
)

// ShadowPrefix marks derived attributes so renderers can tell them apart
// from the props they were copied from.
const ShadowPrefix = "$"

// Props is a component property bag.
type Props map[string]any

// Rule copies Source into a shadow attribute named after Target.
// Default is used when the source value is not truthy. Strip clears the
// source key in the derived bag.
type Rule struct {
	Source  string
	Target  string
	Strip   bool
	Default any
}

// ShadowName returns the key a rule with the given target writes to.
func ShadowName(target string) string {
	return ShadowPrefix + target
}

// DeriveProps returns a shallow copy of p with one shadow attribute per rule.
// Rules apply in order and later rules overwrite colliding shadow keys.
// Stripped keys stay present with a nil value. The input is never mutated,
// and shadow values are always read from it, so the result only depends on
// p and rules.
func DeriveProps(p Props, rules []Rule) Props {
	derived := make(Props, len(p)+len(rules))
	for key, value := range p {
		derived[key] = value
	}

	for _, rule := range rules {
		value := p[rule.Source]
		if !Truthy(value) {
			value = rule.Default
		}
		derived[ShadowName(rule.Target)] = value

		if rule.Strip {
			derived[rule.Source] = nil
		}
	}

	return derived
}

// Truthy reports whether v counts as set: nil, false, the empty string,
// numeric zero and NaN do not.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case int:
		return value != 0
	case float64:
		return value != 0 && !math.IsNaN(value)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}
