package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/swatch/internal/theme"
)

// EnvPrefix prefixes environment overrides, e.g. SWATCH_LOG_LEVEL=debug.
const EnvPrefix = "SWATCH"

// Settings configures the swatch CLI.
type Settings struct {
	Log   LogSettings   `mapstructure:"log"`
	Theme ThemeSettings `mapstructure:"theme"`
	Scale ScaleSettings `mapstructure:"scale"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// ThemeSettings selects the theme file used when none is passed explicitly.
type ThemeSettings struct {
	File string `mapstructure:"file"`
}

// ScaleSettings holds default step counts for generated palettes.
type ScaleSettings struct {
	Light int `mapstructure:"light" validate:"min=0,max=20"`
	Dark  int `mapstructure:"dark" validate:"min=0,max=20"`
}

// LoadSettings reads settings from path (or ./swatch.yaml and
// $HOME/.config/swatch/swatch.yaml when path is empty) and SWATCH_*
// environment variables. Missing files fall back to defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("swatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/swatch")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// SetDefaults registers default values for every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
	v.SetDefault("theme.file", "")
	v.SetDefault("scale.light", theme.DefaultLightSteps)
	v.SetDefault("scale.dark", theme.DefaultDarkSteps)
}

// Validate checks settings against their declared constraints.
func (s *Settings) Validate() error {
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}
