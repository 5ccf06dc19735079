package themes

import (
	"os"
	"path/filepath"
)

// ThemeSearchPaths returns user theme directories in precedence order.
// Explicitly configured directories come first.
func ThemeSearchPaths(projectDir string, extraDirs []string) []string {
	paths := make([]string, 0, len(extraDirs)+2)
	paths = append(paths, extraDirs...)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".swatch", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "swatch", "themes"))
	}
	return paths
}

// LoadCatalog builds the catalog: built-in themes first, in their fixed order,
// then user themes from the search paths. The first directory defining an id
// wins; user themes cannot replace a built-in id.
func LoadCatalog(projectDir string, extraDirs []string) (*Catalog, error) {
	builtins, err := LoadBuiltinThemes()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(builtins))
	ordered := make([]*Theme, 0, len(builtins))
	for _, theme := range builtins {
		seen[theme.ID] = struct{}{}
		ordered = append(ordered, theme)
	}

	for _, path := range ThemeSearchPaths(projectDir, extraDirs) {
		loaded, err := LoadThemesFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, theme := range loaded {
			if _, exists := seen[theme.ID]; exists {
				continue
			}
			seen[theme.ID] = struct{}{}
			ordered = append(ordered, theme)
		}
	}

	return NewCatalog(ordered...)
}
