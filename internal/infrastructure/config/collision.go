package config

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/tilekit/internal/domain/collision"
)

// CollisionConfig is the root config for collisions.yaml
type CollisionConfig struct {
	Formulas   []FormulaConfig  `yaml:"formulas"`
	Groups     []GroupConfig    `yaml:"groups"`
	Categories []CategoryConfig `yaml:"categories"`
}

type FormulaConfig struct {
	Name        string              `yaml:"name"`
	Input       string              `yaml:"input"`
	Output      string              `yaml:"output"`
	Min         float64             `yaml:"min"`
	Max         float64             `yaml:"max"`
	Coefficient float64             `yaml:"coefficient"`
	Offset      float64             `yaml:"offset"`
	Constraint  map[string][]string `yaml:"constraint,omitempty"`
}

type GroupConfig struct {
	Name     string   `yaml:"name"`
	Formulas []string `yaml:"formulas"`
}

type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Axis     string   `yaml:"axis"`
	OffsetX  float64  `yaml:"offsetX,omitempty"`
	OffsetY  float64  `yaml:"offsetY,omitempty"`
	Formulas []string `yaml:"formulas"`
}

// ParseCollisions decodes collisions.yaml content
func ParseCollisions(data []byte) (*CollisionConfig, error) {
	var cfg CollisionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Registry converts the config into a validated collision registry
func (c *CollisionConfig) Registry() (*collision.Registry, error) {
	formulas := make([]collision.Formula, 0, len(c.Formulas))
	for _, f := range c.Formulas {
		input, err := collision.ParseAxis(f.Input)
		if err != nil {
			return nil, &collision.ConfigError{Kind: collision.ErrInvalidValue, Owner: "formula " + f.Name, Name: f.Input}
		}
		output, err := collision.ParseAxis(f.Output)
		if err != nil {
			return nil, &collision.ConfigError{Kind: collision.ErrInvalidValue, Owner: "formula " + f.Name, Name: f.Output}
		}
		var constraint collision.Constraint
		if len(f.Constraint) > 0 {
			constraint = make(collision.Constraint, len(f.Constraint))
			for orientation, groups := range f.Constraint {
				constraint[collision.Orientation(orientation)] = groups
			}
		}
		formulas = append(formulas, collision.Formula{
			Name:        f.Name,
			Input:       input,
			Output:      output,
			Min:         f.Min,
			Max:         f.Max,
			Coefficient: f.Coefficient,
			Offset:      f.Offset,
			Constraint:  constraint,
		})
	}

	groups := make([]collision.Group, 0, len(c.Groups))
	for _, g := range c.Groups {
		groups = append(groups, collision.Group{Name: g.Name, Formulas: g.Formulas})
	}

	categories := make([]collision.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		axis, err := collision.ParseAxis(cat.Axis)
		if err != nil {
			return nil, &collision.ConfigError{Kind: collision.ErrInvalidValue, Owner: "category " + cat.Name, Name: cat.Axis}
		}
		categories = append(categories, collision.Category{
			Name:     cat.Name,
			Axis:     axis,
			OffsetX:  cat.OffsetX,
			OffsetY:  cat.OffsetY,
			Formulas: cat.Formulas,
		})
	}

	return collision.NewRegistry(formulas, groups, categories)
}

// FromRegistry converts a registry back to its declarative form
func FromRegistry(r *collision.Registry) *CollisionConfig {
	cfg := &CollisionConfig{}
	for _, f := range r.Formulas() {
		fc := FormulaConfig{
			Name:        f.Name,
			Input:       f.Input.String(),
			Output:      f.Output.String(),
			Min:         f.Min,
			Max:         f.Max,
			Coefficient: f.Coefficient,
			Offset:      f.Offset,
		}
		if len(f.Constraint) > 0 {
			fc.Constraint = make(map[string][]string, len(f.Constraint))
			for orientation, groups := range f.Constraint {
				fc.Constraint[string(orientation)] = slices.Clone(groups)
			}
		}
		cfg.Formulas = append(cfg.Formulas, fc)
	}
	for _, g := range r.Groups() {
		cfg.Groups = append(cfg.Groups, GroupConfig{Name: g.Name, Formulas: slices.Clone(g.Formulas)})
	}
	for _, c := range r.Categories() {
		cfg.Categories = append(cfg.Categories, CategoryConfig{
			Name:     c.Name,
			Axis:     c.Axis.String(),
			OffsetX:  c.OffsetX,
			OffsetY:  c.OffsetY,
			Formulas: slices.Clone(c.Formulas),
		})
	}
	return cfg
}

// SaveCollisions writes the config as YAML
func SaveCollisions(w io.Writer, cfg *CollisionConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode collisions: %w", err)
	}
	return enc.Close()
}
