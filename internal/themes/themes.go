// Package themes provides the catalog of named base themes.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/color"
	"github.com/opencode-ai/swatch/internal/palette"
)

// Catalog errors.
var (
	ErrThemeNotFound  = errors.New("theme not found")
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrDuplicateTheme = errors.New("duplicate theme id")
)

// Theme is a named, immutable base palette.
type Theme struct {
	ID      string
	Name    string
	Palette palette.Extended
	Source  string // file path or "builtin"
}

// Definition is the on-disk form of a theme.
type Definition struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Seed      SeedDefinition    `yaml:"seed"`
	Overrides map[string]string `yaml:"overrides,omitempty"`
}

// SeedDefinition lists the seed colors as user-typed color text.
type SeedDefinition struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Primary    string `yaml:"primary"`
	Success    string `yaml:"success"`
	Danger     string `yaml:"danger"`
}

type catalogFile struct {
	Themes []Definition `yaml:"themes"`
}

// Build validates a definition and expands it into a theme. Seed and override
// colors accept every syntax color.Parse does.
func (d Definition) Build() (*Theme, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidTheme)
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = id
	}

	seed, err := d.Seed.build()
	if err != nil {
		return nil, fmt.Errorf("%w: theme %q: %v", ErrInvalidTheme, id, err)
	}
	ext := palette.Generate(seed)

	for roleName, value := range d.Overrides {
		role, err := palette.ParseRole(roleName)
		if err != nil {
			return nil, fmt.Errorf("%w: theme %q: %v", ErrInvalidTheme, id, err)
		}
		c, err := color.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w: theme %q override %s: %v", ErrInvalidTheme, id, role, err)
		}
		ext = palette.Overlay(ext, role, palette.NewPair(c))
	}

	return &Theme{ID: id, Name: name, Palette: ext}, nil
}

func (s SeedDefinition) build() (palette.Seed, error) {
	var seed palette.Seed
	fields := []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"background", s.Background, &seed.Background},
		{"text", s.Text, &seed.Text},
		{"primary", s.Primary, &seed.Primary},
		{"success", s.Success, &seed.Success},
		{"danger", s.Danger, &seed.Danger},
	}

	for _, f := range fields {
		c, err := color.Parse(f.value)
		if err != nil {
			return palette.Seed{}, fmt.Errorf("seed %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return seed, nil
}

// Catalog is an ordered list of base themes with lookup by id.
type Catalog struct {
	themes []*Theme
	byID   map[string]int
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(themes ...*Theme) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(themes))}
	for _, t := range themes {
		if err := c.add(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(t *Theme) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTheme)
	}
	if _, exists := c.byID[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTheme, t.ID)
	}
	c.byID[t.ID] = len(c.themes)
	c.themes = append(c.themes, t)
	return nil
}

// Len returns the number of themes.
func (c *Catalog) Len() int {
	return len(c.themes)
}

// List returns the themes in catalog order.
func (c *Catalog) List() []*Theme {
	out := make([]*Theme, len(c.themes))
	copy(out, c.themes)
	return out
}

// Lookup finds a theme by id.
func (c *Catalog) Lookup(id string) (*Theme, error) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, id)
	}
	return c.themes[idx], nil
}

// Index returns the position of id in catalog order, or -1.
func (c *Catalog) Index(id string) int {
	idx, ok := c.byID[id]
	if !ok {
		return -1
	}
	return idx
}

// Default returns the first theme, or nil for an empty catalog.
func (c *Catalog) Default() *Theme {
	if len(c.themes) == 0 {
		return nil
	}
	return c.themes[0]
}

// Next returns the theme after id, wrapping around.
func (c *Catalog) Next(id string) *Theme {
	return c.step(id, 1)
}

// Prev returns the theme before id, wrapping around.
func (c *Catalog) Prev(id string) *Theme {
	return c.step(id, -1)
}

func (c *Catalog) step(id string, delta int) *Theme {
	n := len(c.themes)
	if n == 0 {
		return nil
	}
	idx, ok := c.byID[id]
	if !ok {
		return c.themes[0]
	}
	return c.themes[((idx+delta)%n+n)%n]
}
