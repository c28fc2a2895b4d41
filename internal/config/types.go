package config

// ThemeFile is the on-disk description of a theme.
type ThemeFile struct {
	Name       string                          `yaml:"name" validate:"required,token_name"`
	Extends    string                          `yaml:"extends,omitempty" validate:"omitempty,oneof=default none"`
	Scales     map[string]ScaleSpec            `yaml:"scales,omitempty" validate:"omitempty,dive,keys,token_name,endkeys"`
	Named      map[string]map[string]ScaleSpec `yaml:"named,omitempty" validate:"omitempty,dive,keys,token_name,endkeys,dive,keys,token_name,endkeys"`
	Palettes   []PaletteSpec                   `yaml:"palettes,omitempty" validate:"omitempty,dive"`
	Aliases    map[string]string               `yaml:"aliases,omitempty" validate:"omitempty,dive,keys,token_name,endkeys,token_name"`
	Components map[string]ComponentSpec        `yaml:"components,omitempty" validate:"omitempty,dive,keys,token_name,endkeys"`
}

// ScaleSpec is a scale written out as an offset and its values.
type ScaleSpec struct {
	Offset int   `yaml:"offset" validate:"min=0"`
	Values []any `yaml:"values" validate:"required,min=1"`
}

// PaletteSpec asks for a palette generated from a seed colour.
type PaletteSpec struct {
	Name  string `yaml:"name" validate:"required,token_name"`
	Seed  string `yaml:"seed" validate:"required,hexcolour"`
	Light int    `yaml:"light" validate:"min=0,max=20"`
	Dark  int    `yaml:"dark" validate:"min=0,max=20"`
}

// ComponentSpec declares a component's base style and its variants.
type ComponentSpec struct {
	Base     map[string]any `yaml:"base,omitempty"`
	Variants []VariantSpec  `yaml:"variants,omitempty" validate:"omitempty,dive"`
}

// VariantSpec declares one variant dimension of a component.
type VariantSpec struct {
	Dimension string                    `yaml:"dimension" validate:"required,token_name"`
	Required  bool                      `yaml:"required,omitempty"`
	Allowed   []string                  `yaml:"allowed" validate:"required,min=1,dive,required"`
	Fragments map[string]map[string]any `yaml:"fragments,omitempty"`
}
