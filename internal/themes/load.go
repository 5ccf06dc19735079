package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTheme reads a single theme definition from disk.
func LoadTheme(path string) (*Theme, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	theme, err := parseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	theme.Source = path
	return theme, nil
}

// LoadThemesFromDir loads every .yaml/.yml theme in dir, sorted by id.
// A missing directory yields no themes.
func LoadThemesFromDir(dir string) ([]*Theme, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Theme{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Theme{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	themes := make([]*Theme, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		theme, err := LoadTheme(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}

	sort.Slice(themes, func(i, j int) bool {
		return themes[i].ID < themes[j].ID
	})

	return themes, nil
}

func parseTheme(data []byte) (*Theme, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return def.Build()
}
