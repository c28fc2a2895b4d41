package preview

import (
	"math"
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies one resolved style property to a lipgloss style.
type StyleFunc func(lipgloss.Style, map[string]any, Options) lipgloss.Style

// Terminal approximations of spacing and weight values.
const (
	pixelsPerCell = 8
	maxCells      = 4
	boldWeight    = 600
)

var styleFuncs = []StyleFunc{
	applyColours,
	applyPadding,
	applyWeight,
	applyBorder,
}

// Style maps a resolved style object onto a lipgloss style. Only the
// properties a terminal can show are honoured: colours, padding, bold weights
// and borders. Colours are painted only when opts.Color is set.
func Style(resolved map[string]any, opts Options) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, fn := range styleFuncs {
		style = fn(style, resolved, opts)
	}
	return style
}

// Component renders label with the resolved style.
func Component(label string, resolved map[string]any, opts Options) string {
	return Style(resolved, opts).Render(label)
}

func applyColours(style lipgloss.Style, resolved map[string]any, opts Options) lipgloss.Style {
	if !opts.Color {
		return style
	}
	if bg, ok := colourProp(resolved, "bg", "backgroundColor"); ok {
		style = style.Background(bg)
	}
	if fg, ok := colourProp(resolved, "color"); ok {
		style = style.Foreground(fg)
	}
	if border, ok := colourProp(resolved, "borderColor"); ok {
		style = style.BorderForeground(border)
	}
	return style
}

func applyPadding(style lipgloss.Style, resolved map[string]any, _ Options) lipgloss.Style {
	top, right, bottom, left := 0, 0, 0, 0
	if all, ok := cells(resolved, "padding", "p"); ok {
		top, right, bottom, left = all, all, all, all
	}
	if x, ok := cells(resolved, "paddingX", "px"); ok {
		left, right = x, x
	}
	if y, ok := cells(resolved, "paddingY", "py"); ok {
		top, bottom = y, y
	}
	// a row is roughly two columns tall
	return style.Padding(top/2, right, bottom/2, left)
}

func applyWeight(style lipgloss.Style, resolved map[string]any, _ Options) lipgloss.Style {
	if weight, ok := number(resolved["fontWeight"]); ok && weight >= boldWeight {
		style = style.Bold(true)
	}
	return style
}

func applyBorder(style lipgloss.Style, resolved map[string]any, _ Options) lipgloss.Style {
	value, ok := resolved["border"]
	if !ok || value == nil || value == "" || value == "none" {
		return style
	}
	if n, ok := number(value); ok && n == 0 {
		return style
	}
	return style.Border(lipgloss.RoundedBorder())
}

func colourProp(resolved map[string]any, keys ...string) (lipgloss.Color, bool) {
	for _, key := range keys {
		text, ok := resolved[key].(string)
		if !ok {
			continue
		}
		if c, ok := terminalColour(text); ok {
			return c, true
		}
	}
	return "", false
}

func cells(resolved map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		value, ok := number(resolved[key])
		if !ok {
			continue
		}
		n := int(math.Ceil(value / pixelsPerCell))
		if n < 0 {
			n = 0
		}
		if n > maxCells {
			n = maxCells
		}
		return n, true
	}
	return 0, false
}

func number(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
