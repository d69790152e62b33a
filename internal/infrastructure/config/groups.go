package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// GroupsConfig is the root config for groups.yaml
type GroupsConfig struct {
	Groups []TileGroupConfig `yaml:"groups"`
}

type TileGroupConfig struct {
	Name   string            `yaml:"name"`
	Tiles  []tile.Ref        `yaml:"tiles,omitempty"`
	Ranges []TileRangeConfig `yaml:"ranges,omitempty"`
}

// TileRangeConfig covers tile numbers From..To (inclusive) of one sheet
type TileRangeConfig struct {
	Sheet int `yaml:"sheet"`
	From  int `yaml:"from"`
	To    int `yaml:"to"`
}

// ParseGroups decodes groups.yaml content
func ParseGroups(data []byte) (*GroupsConfig, error) {
	var cfg GroupsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Registry expands ranges and builds the exclusive tile group registry
func (c *GroupsConfig) Registry() (*tile.Groups, error) {
	groups := make([]tile.TileGroup, 0, len(c.Groups))
	for _, g := range c.Groups {
		refs := append([]tile.Ref(nil), g.Tiles...)
		for _, r := range g.Ranges {
			if r.From > r.To {
				return nil, &tile.GroupError{Group: g.Name, Reason: fmt.Sprintf("range %d..%d is inverted", r.From, r.To)}
			}
			for n := r.From; n <= r.To; n++ {
				refs = append(refs, tile.Ref{Sheet: r.Sheet, Number: n})
			}
		}
		groups = append(groups, tile.TileGroup{Name: g.Name, Refs: refs})
	}
	return tile.NewGroups(groups...)
}
