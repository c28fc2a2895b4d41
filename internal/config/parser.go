package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseThemeFile loads a theme file from disk, validates it, and returns the resulting model.
func ParseThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}
	return ParseTheme(path, data)
}

// ParseTheme decodes and validates theme YAML. source names the document in errors.
func ParseTheme(source string, data []byte) (*ThemeFile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file ThemeFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("document is empty")
		}
		return nil, swatcherrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateThemeFile(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
