package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/opencode-ai/swatch/internal/themes"
)

// pickTheme prompts for a base theme, preselecting current.
func pickTheme(catalog *themes.Catalog, current string) (string, error) {
	value := current
	err := huh.NewSelect[string]().
		Title("Base theme").
		Options(themeOptions(catalog)...).
		Value(&value).
		Run()
	return value, err
}

func themeOptions(catalog *themes.Catalog) []huh.Option[string] {
	list := catalog.List()
	opts := make([]huh.Option[string], len(list))
	for i, theme := range list {
		opts[i] = huh.NewOption(theme.Name, theme.ID)
	}
	return opts
}
