// Package palette defines the color roles of an extended palette and the
// operations that read and replace them.
package palette

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name cannot be resolved.
var ErrUnknownRole = errors.New("unknown role")

// Usage is the semantic category of a color.
type Usage int

const (
	Primary Usage = iota
	Secondary
	Background
	Success
	Danger
)

// Variant is the intensity tier within a usage.
type Variant int

const (
	Base Variant = iota
	Weak
	Strong
)

const (
	usageCount   = 5
	variantCount = 3

	// RoleCount is the number of distinct roles in an extended palette.
	RoleCount = usageCount * variantCount
)

var usageNames = [usageCount]string{"primary", "secondary", "background", "success", "danger"}

var variantNames = [variantCount]string{"base", "weak", "strong"}

// Usages returns every usage in display order.
func Usages() []Usage {
	return []Usage{Primary, Secondary, Background, Success, Danger}
}

// Variants returns every variant in display order.
func Variants() []Variant {
	return []Variant{Base, Weak, Strong}
}

func (u Usage) valid() bool { return u >= 0 && int(u) < usageCount }

func (v Variant) valid() bool { return v >= 0 && int(v) < variantCount }

func (u Usage) String() string {
	if !u.valid() {
		return fmt.Sprintf("usage(%d)", int(u))
	}
	return usageNames[u]
}

// Label returns the capitalized name used for row headers.
func (u Usage) Label() string {
	return capitalize(u.String())
}

func (v Variant) String() string {
	if !v.valid() {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// Label returns the capitalized name used for column headers.
func (v Variant) Label() string {
	return capitalize(v.String())
}

// Role is a concrete (usage, variant) pair.
type Role struct {
	Usage   Usage
	Variant Variant
}

// Valid reports whether the role names one of the fixed slots.
func (r Role) Valid() bool {
	return r.Usage.valid() && r.Variant.valid()
}

func (r Role) String() string {
	return r.Usage.String() + "." + r.Variant.String()
}

func (r Role) index() int {
	return int(r.Usage)*variantCount + int(r.Variant)
}

// Roles returns all roles, usage-major.
func Roles() []Role {
	roles := make([]Role, 0, RoleCount)
	for _, u := range Usages() {
		for _, v := range Variants() {
			roles = append(roles, Role{Usage: u, Variant: v})
		}
	}
	return roles
}

// ParseRole resolves names like "primary.weak". A bare usage selects its base
// variant.
func ParseRole(name string) (Role, error) {
	value := strings.ToLower(strings.TrimSpace(name))
	usagePart, variantPart, found := strings.Cut(value, ".")
	if !found {
		variantPart = variantNames[Base]
	}

	role := Role{Usage: -1, Variant: -1}
	for i, n := range usageNames {
		if n == usagePart {
			role.Usage = Usage(i)
		}
	}
	for i, n := range variantNames {
		if n == variantPart {
			role.Variant = Variant(i)
		}
	}
	if !role.Valid() {
		return Role{}, fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
	return role, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
