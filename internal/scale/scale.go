// Package scale models ordered token scales with a designated base entry.
//
// A scale is an ordered list of values plus an offset that marks the base
// entry. Entries before the offset are lighter or earlier steps and entries
// after it are darker or later steps, so a palette generated from a seed
// colour keeps the seed at Offset.
//
// Scales are recognised structurally: IsScale accepts any value that carries
// an integer offset and a sequence of values, whether it is a Scale, another
// type implementing Shape, or a plain map decoded from JSON or YAML.
package scale

import (
	"math"
	"reflect"
)

// Shape is the capability a value needs to be treated as a scale.
type Shape interface {
	ScaleOffset() int
	ScaleLen() int
	ScaleAt(index int) any
}

// Scale is an ordered sequence of values with a base entry at Offset.
type Scale[T any] struct {
	Offset int `json:"offset" yaml:"offset"`
	Values []T `json:"values" yaml:"values"`
}

// New creates a scale whose base entry sits at offset.
func New[T any](offset int, values ...T) Scale[T] {
	return Scale[T]{Offset: offset, Values: values}
}

// Len returns the number of entries.
func (s Scale[T]) Len() int {
	return len(s.Values)
}

// Index returns the entry at absolute position i.
func (s Scale[T]) Index(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.Values) {
		return zero, false
	}
	return s.Values[i], true
}

// At returns the entry step positions away from the base entry.
// Step 0 is the base; negative steps move towards index 0.
func (s Scale[T]) At(step int) (T, bool) {
	return s.Index(s.Offset + step)
}

// Base returns the entry at Offset.
func (s Scale[T]) Base() (T, bool) {
	return s.Index(s.Offset)
}

// Any returns a copy of the scale with its values boxed.
func (s Scale[T]) Any() Scale[any] {
	values := make([]any, len(s.Values))
	for i, v := range s.Values {
		values[i] = v
	}
	return Scale[any]{Offset: s.Offset, Values: values}
}

// ScaleOffset implements Shape.
func (s Scale[T]) ScaleOffset() int { return s.Offset }

// ScaleLen implements Shape.
func (s Scale[T]) ScaleLen() int { return len(s.Values) }

// ScaleAt implements Shape. It returns nil when index is out of range.
func (s Scale[T]) ScaleAt(index int) any {
	v, ok := s.Index(index)
	if !ok {
		return nil
	}
	return v
}

// IsScale reports whether value has the shape of a scale: an integer offset
// and a sequence of values. It classifies rather than validates, so malformed
// input yields false and never panics.
func IsScale(value any) bool {
	_, ok := FromValue(value)
	return ok
}

// FromValue normalises any value accepted by IsScale into a Scale[any].
func FromValue(value any) (Scale[any], bool) {
	if value == nil {
		return Scale[any]{}, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Scale[any]{}, false
		}
	}

	if shape, ok := value.(Shape); ok {
		return fromShape(shape), true
	}

	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Scale[any]{}, false
	}

	offset, ok := integerField(mapField(rv, "offset"))
	if !ok {
		return Scale[any]{}, false
	}

	values := mapField(rv, "values")
	if !values.IsValid() || (values.Kind() != reflect.Slice && values.Kind() != reflect.Array) {
		return Scale[any]{}, false
	}

	boxed := make([]any, values.Len())
	for i := range boxed {
		boxed[i] = values.Index(i).Interface()
	}
	return Scale[any]{Offset: offset, Values: boxed}, true
}

func fromShape(shape Shape) Scale[any] {
	if s, ok := shape.(Scale[any]); ok {
		return s
	}
	values := make([]any, shape.ScaleLen())
	for i := range values {
		values[i] = shape.ScaleAt(i)
	}
	return Scale[any]{Offset: shape.ScaleOffset(), Values: values}
}

// mapField returns the concrete value stored under key, unwrapping
// interface-typed map elements. The result is invalid when the key is
// missing or holds nil.
func mapField(m reflect.Value, key string) reflect.Value {
	v := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func integerField(v reflect.Value) (int, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
