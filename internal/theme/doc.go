// Package theme resolves abstract style tokens into concrete values.
//
// # Overview
//
// A Theme is an immutable registry of scales grouped by category (space,
// colors, fontSizes, ...). Components declare styles with tokens instead of
// literals and resolve them against whichever theme is in play:
//
//	t := theme.Default()
//	padding, err := t.Resolve(theme.CategorySpace, 2)        // 8
//	brand, err := t.Resolve(theme.CategoryColors, "primary")  // "#3b82f6"
//	lighter, err := t.Resolve(theme.CategoryColors, "primary.-2")
//
// # Addressing
//
// Scales are addressed relative to their offset. Step 0 is the base entry,
// negative steps move towards the start of the scale and positive steps
// towards the end. For generated palettes the start is the lightest shade.
//
// A token that already has the shape of a scale is treated as resolved and
// yields its base entry without consulting the category.
//
// # Immutability
//
// Themes are values. There are no setters; With returns a copy:
//
//	dark := t.With(
//		theme.WithName("dark"),
//		theme.WithPalette(surface),
//	)
//
// Switching themes means passing a different value, so no cache can go
// stale and a theme can be read from any goroutine.
//
// # Styles
//
// ResolveStyle walks a style object, applies the variant fragments selected
// by the component's props (see package variant) and resolves every
// property aliased to a category:
//
//	style := variant.Merge(base, sizes)
//	resolved, err := t.ResolveStyle(style, map[string]any{"size": "lg"})
//
// Tokens that cannot be resolved are kept as literals; ResolveStyleStrict
// reports them instead.
package theme
