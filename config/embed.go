package config

import (
	_ "embed"
	"fmt"

	"github.com/milk9111/padcmd/input"
	"gopkg.in/yaml.v3"
)

//go:embed bindings.yaml
var defaultBindings []byte

func defaultFile() (*File, error) {
	var f File
	if err := yaml.Unmarshal(defaultBindings, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded bindings.yaml: %w", err)
	}
	return &f, nil
}

// LoadDefault returns the bindings shipped with the binary.
func LoadDefault() (*File, error) {
	return defaultFile()
}

// Default returns the shipped bindings resolved into an input.Config.
func Default() (*input.Config, error) {
	f, err := LoadDefault()
	if err != nil {
		return nil, err
	}
	return f.Input()
}
