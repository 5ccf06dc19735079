package themes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/catalog.yaml
var builtinFS embed.FS

// LoadBuiltinThemes returns the base themes bundled with swatch in catalog order.
func LoadBuiltinThemes() ([]*Theme, error) {
	data, err := builtinFS.ReadFile("builtin/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse builtin themes: %w", err)
	}

	themes := make([]*Theme, 0, len(file.Themes))
	for _, def := range file.Themes {
		theme, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("builtin theme: %w", err)
		}
		theme.Source = "builtin"
		themes = append(themes, theme)
	}
	return themes, nil
}
