package palette

import "github.com/opencode-ai/swatch/internal/color"

// Pair is a background color and the text color drawn on it.
type Pair struct {
	Color color.Color
	Text  color.Color
}

// NewPair derives the text color of background with color.ContrastFor.
func NewPair(background color.Color) Pair {
	return Pair{Color: background, Text: color.ContrastFor(background)}
}

// Extended holds a pair for every role. It is a value type: assignment copies
// all slots, so a palette handed out can never change under its holder.
type Extended struct {
	pairs [RoleCount]Pair
}

// FromPairs builds a palette by asking fn for each role.
func FromPairs(fn func(Role) Pair) Extended {
	var p Extended
	for _, role := range Roles() {
		p.pairs[role.index()] = fn(role)
	}
	return p
}

// Get returns the pair stored for role. Invalid roles yield the zero pair.
func (p Extended) Get(role Role) Pair {
	if !role.Valid() {
		return Pair{}
	}
	return p.pairs[role.index()]
}

// Overlay returns a copy of base with the slot for role replaced by pair.
// base itself is never modified. Invalid roles return base unchanged.
func Overlay(base Extended, role Role, pair Pair) Extended {
	if !role.Valid() {
		return base
	}
	next := base
	next.pairs[role.index()] = pair
	return next
}

// DisplayColor returns the color used to render role's swatch.
func DisplayColor(p Extended, role Role) color.Color {
	return p.Get(role).Color
}

// DisplayText returns role's color formatted as "rgb(R, G, B)".
func DisplayText(p Extended, role Role) string {
	return DisplayColor(p, role).String()
}
