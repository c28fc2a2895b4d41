package theme

import (
	"sort"

	"github.com/alexisbeaulieu97/swatch/internal/colour"
	"github.com/alexisbeaulieu97/swatch/internal/scale"
)

// Well-known categories.
const (
	CategorySpace       = "space"
	CategoryColors      = "colors"
	CategoryFontSizes   = "fontSizes"
	CategoryFontWeights = "fontWeights"
	CategoryLineHeights = "lineHeights"
	CategoryRadii       = "radii"
	CategorySizes       = "sizes"
	CategoryBreakpoints = "breakpoints"
)

// category holds a default scale addressed by numeric steps and named scales
// addressed by "name" or "name.step" tokens.
type category struct {
	scale      scale.Scale[any]
	hasDefault bool
	named      map[string]scale.Scale[any]
}

func (c category) clone() category {
	named := make(map[string]scale.Scale[any], len(c.named))
	for name, s := range c.named {
		named[name] = s
	}
	c.named = named
	return c
}

// Theme is an immutable registry of token scales grouped by category.
// Build one with New; With returns a modified copy and never touches the
// receiver, so a theme can be shared freely across renders and goroutines.
type Theme struct {
	name       string
	categories map[string]category
	aliases    map[string]string
}

// Option configures a theme under construction.
type Option func(*Theme)

// New creates a theme with the default style property aliases.
func New(name string, opts ...Option) Theme {
	t := Theme{
		name:       name,
		categories: map[string]category{},
		aliases:    defaultAliases(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// With returns a copy of t with opts applied.
func (t Theme) With(opts ...Option) Theme {
	next := Theme{
		name:       t.name,
		categories: make(map[string]category, len(t.categories)),
		aliases:    make(map[string]string, len(t.aliases)),
	}
	for key, cat := range t.categories {
		next.categories[key] = cat.clone()
	}
	for property, cat := range t.aliases {
		next.aliases[property] = cat
	}
	for _, opt := range opts {
		opt(&next)
	}
	return next
}

// WithName renames the theme.
func WithName(name string) Option {
	return func(t *Theme) {
		t.name = name
	}
}

// WithScale sets the default scale of a category. Values that do not have
// the shape of a scale are ignored.
func WithScale(categoryName string, s any) Option {
	return func(t *Theme) {
		normalised, ok := scale.FromValue(s)
		if !ok {
			return
		}
		cat := t.category(categoryName)
		cat.scale = normalised
		cat.hasDefault = true
		t.categories[categoryName] = cat
	}
}

// WithNamedScale registers a named scale inside a category.
func WithNamedScale(categoryName, name string, s any) Option {
	return func(t *Theme) {
		normalised, ok := scale.FromValue(s)
		if !ok {
			return
		}
		cat := t.category(categoryName)
		cat.named[name] = normalised
		t.categories[categoryName] = cat
	}
}

// WithPalette registers a generated palette and its text scale as named
// colour scales.
func WithPalette(p colour.Palette) Option {
	return func(t *Theme) {
		for name, s := range p.Entries() {
			WithNamedScale(CategoryColors, name, s)(t)
		}
	}
}

// WithAlias maps a style property to the category its tokens resolve in.
func WithAlias(property, categoryName string) Option {
	return func(t *Theme) {
		t.aliases[property] = categoryName
	}
}

func (t *Theme) category(name string) category {
	cat, ok := t.categories[name]
	if !ok {
		return category{named: map[string]scale.Scale[any]{}}
	}
	return cat
}

// Name returns the theme name.
func (t Theme) Name() string {
	return t.name
}

// Categories lists the registered categories in sorted order.
func (t Theme) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scale returns the default scale of a category.
func (t Theme) Scale(categoryName string) (scale.Scale[any], bool) {
	cat, ok := t.categories[categoryName]
	if !ok || !cat.hasDefault {
		return scale.Scale[any]{}, false
	}
	return cat.scale, true
}

// NamedScale returns a named scale from a category.
func (t Theme) NamedScale(categoryName, name string) (scale.Scale[any], bool) {
	cat, ok := t.categories[categoryName]
	if !ok {
		return scale.Scale[any]{}, false
	}
	s, ok := cat.named[name]
	return s, ok
}

// Names lists the named scales of a category in sorted order.
func (t Theme) Names(categoryName string) []string {
	cat := t.categories[categoryName]
	names := make([]string, 0, len(cat.named))
	for name := range cat.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Alias returns the category a style property resolves in.
func (t Theme) Alias(property string) (string, bool) {
	cat, ok := t.aliases[property]
	return cat, ok
}

func defaultAliases() map[string]string {
	aliases := map[string]string{
		"color":           CategoryColors,
		"bg":              CategoryColors,
		"backgroundColor": CategoryColors,
		"borderColor":     CategoryColors,
		"outlineColor":    CategoryColors,
		"fill":            CategoryColors,
		"stroke":          CategoryColors,
		"fontSize":        CategoryFontSizes,
		"fontWeight":      CategoryFontWeights,
		"lineHeight":      CategoryLineHeights,
		"borderRadius":    CategoryRadii,
		"width":           CategorySizes,
		"height":          CategorySizes,
		"minWidth":        CategorySizes,
		"maxWidth":        CategorySizes,
		"minHeight":       CategorySizes,
		"maxHeight":       CategorySizes,
		"size":            CategorySizes,
		"gap":             CategorySpace,
		"rowGap":          CategorySpace,
		"columnGap":       CategorySpace,
		"top":             CategorySpace,
		"right":           CategorySpace,
		"bottom":          CategorySpace,
		"left":            CategorySpace,
	}
	for _, base := range []string{"margin", "padding"} {
		for _, side := range []string{"", "Top", "Right", "Bottom", "Left", "X", "Y"} {
			aliases[base+side] = CategorySpace
		}
	}
	for _, short := range []string{"m", "mt", "mr", "mb", "ml", "mx", "my", "p", "pt", "pr", "pb", "pl", "px", "py"} {
		aliases[short] = CategorySpace
	}
	return aliases
}
