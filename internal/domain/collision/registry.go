package collision

import (
	"fmt"
	"slices"
	"sort"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// Category bundles the formulas tested for one movement axis
type Category struct {
	Name     string
	Axis     Axis
	OffsetX  float64
	OffsetY  float64
	Formulas []string
}

// Group attaches formulas to every tile of the tile group with the same name
type Group struct {
	Name     string
	Formulas []string
}

// ConfigErrorKind classifies a configuration error
type ConfigErrorKind string

const (
	ErrEmptyName      ConfigErrorKind = "empty name"
	ErrDuplicate      ConfigErrorKind = "duplicate"
	ErrUnknownFormula ConfigErrorKind = "unknown formula"
	ErrInvalidRange   ConfigErrorKind = "invalid range"
	ErrAxisMismatch   ConfigErrorKind = "axis mismatch"
	ErrInvalidValue   ConfigErrorKind = "invalid value"
)

// ConfigError is returned when collision configuration violates an invariant
type ConfigError struct {
	Kind  ConfigErrorKind
	Owner string // "formula x", "category y", "group z"
	Name  string // offending referenced name, if any
}

func (e *ConfigError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("collision config: %s: %s %q", e.Owner, e.Kind, e.Name)
	}
	return fmt.Sprintf("collision config: %s: %s", e.Owner, e.Kind)
}

// Is matches any ConfigError of the same kind
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.Kind == e.Kind && t.Owner == "" && t.Name == ""
}

// Registry owns formulas, collision groups and categories.
// It is immutable after construction: NewRegistry copies its input, and the
// values handed out by the accessors must not be modified.
type Registry struct {
	formulas   map[string]*Formula
	categories map[string]*Category
	groups     map[string]*Group

	groupFormulas map[string]map[string]struct{}
	formulaOrder  []string
}

// NewRegistry validates and indexes the configuration
func NewRegistry(formulas []Formula, groups []Group, categories []Category) (*Registry, error) {
	r := &Registry{
		formulas:      make(map[string]*Formula, len(formulas)),
		categories:    make(map[string]*Category, len(categories)),
		groups:        make(map[string]*Group, len(groups)),
		groupFormulas: make(map[string]map[string]struct{}, len(groups)),
	}

	for i := range formulas {
		f := formulas[i]
		f.Constraint = f.Constraint.Clone()
		owner := "formula " + f.Name
		if f.Name == "" {
			return nil, &ConfigError{Kind: ErrEmptyName, Owner: "formula"}
		}
		if _, dup := r.formulas[f.Name]; dup {
			return nil, &ConfigError{Kind: ErrDuplicate, Owner: owner}
		}
		if f.Min > f.Max {
			return nil, &ConfigError{Kind: ErrInvalidRange, Owner: owner}
		}
		for orientation := range f.Constraint {
			if _, _, ok := orientation.Offset(); !ok {
				return nil, &ConfigError{Kind: ErrInvalidValue, Owner: owner, Name: string(orientation)}
			}
		}
		r.formulas[f.Name] = &f
		r.formulaOrder = append(r.formulaOrder, f.Name)
	}

	for i := range groups {
		g := groups[i]
		g.Formulas = slices.Clone(g.Formulas)
		owner := "group " + g.Name
		if g.Name == "" {
			return nil, &ConfigError{Kind: ErrEmptyName, Owner: "group"}
		}
		if _, dup := r.groups[g.Name]; dup {
			return nil, &ConfigError{Kind: ErrDuplicate, Owner: owner}
		}
		set := make(map[string]struct{}, len(g.Formulas))
		for _, name := range g.Formulas {
			if _, ok := r.formulas[name]; !ok {
				return nil, &ConfigError{Kind: ErrUnknownFormula, Owner: owner, Name: name}
			}
			set[name] = struct{}{}
		}
		r.groups[g.Name] = &g
		r.groupFormulas[g.Name] = set
	}

	for i := range categories {
		c := categories[i]
		c.Formulas = slices.Clone(c.Formulas)
		owner := "category " + c.Name
		if c.Name == "" {
			return nil, &ConfigError{Kind: ErrEmptyName, Owner: "category"}
		}
		if _, dup := r.categories[c.Name]; dup {
			return nil, &ConfigError{Kind: ErrDuplicate, Owner: owner}
		}
		for _, name := range c.Formulas {
			f, ok := r.formulas[name]
			if !ok {
				return nil, &ConfigError{Kind: ErrUnknownFormula, Owner: owner, Name: name}
			}
			if f.Output != c.Axis {
				return nil, &ConfigError{Kind: ErrAxisMismatch, Owner: owner, Name: name}
			}
		}
		r.categories[c.Name] = &c
	}

	return r, nil
}

// Formula returns a formula by name
func (r *Registry) Formula(name string) (*Formula, bool) {
	f, ok := r.formulas[name]
	return f, ok
}

// Category returns a category by name
func (r *Registry) Category(name string) (*Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

// Formulas returns all formulas in declaration order
func (r *Registry) Formulas() []*Formula {
	out := make([]*Formula, 0, len(r.formulaOrder))
	for _, name := range r.formulaOrder {
		out = append(out, r.formulas[name])
	}
	return out
}

// Categories returns all categories sorted by name
func (r *Registry) Categories() []*Category {
	out := make([]*Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Groups returns all collision groups sorted by name
func (r *Registry) Groups() []*Group {
	out := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TileFormulas returns the formulas painted on a tile through its group
func (r *Registry) TileFormulas(t *tile.Tile) []*Formula {
	g, ok := r.groups[t.Group]
	if !ok {
		return nil
	}
	out := make([]*Formula, 0, len(g.Formulas))
	for _, name := range g.Formulas {
		out = append(out, r.formulas[name])
	}
	return out
}

// CategoryFormulas returns the category formulas that are painted on the tile,
// in category order
func (r *Registry) CategoryFormulas(c *Category, t *tile.Tile) []*Formula {
	set, ok := r.groupFormulas[t.Group]
	if !ok || len(set) == 0 {
		return nil
	}
	var out []*Formula
	for _, name := range c.Formulas {
		if _, painted := set[name]; painted {
			out = append(out, r.formulas[name])
		}
	}
	return out
}
