package tile

import (
	"fmt"
	"sort"
)

// TileGroup is a named set of tile references
type TileGroup struct {
	Name string
	Refs []Ref
}

// Contains reports whether the tile belongs to the group
func (g TileGroup) Contains(t *Tile) bool {
	ref := t.Ref()
	for _, r := range g.Refs {
		if r == ref {
			return true
		}
	}
	return false
}

// GroupError reports an invalid group definition
type GroupError struct {
	Group  string
	Ref    *Ref
	Reason string
}

func (e *GroupError) Error() string {
	if e.Ref != nil {
		return fmt.Sprintf("tile group %q: tile %s: %s", e.Group, e.Ref, e.Reason)
	}
	return fmt.Sprintf("tile group %q: %s", e.Group, e.Reason)
}

// Groups maps tile references to their exclusive group
type Groups struct {
	byRef  map[Ref]string
	groups map[string]TileGroup
}

// NewGroups builds the registry. A ref may belong to only one group.
func NewGroups(groups ...TileGroup) (*Groups, error) {
	g := &Groups{
		byRef:  make(map[Ref]string),
		groups: make(map[string]TileGroup, len(groups)),
	}
	for _, group := range groups {
		if group.Name == "" {
			return nil, &GroupError{Reason: "empty group name"}
		}
		if _, dup := g.groups[group.Name]; dup {
			return nil, &GroupError{Group: group.Name, Reason: "duplicate group"}
		}
		for _, ref := range group.Refs {
			if owner, taken := g.byRef[ref]; taken {
				r := ref
				return nil, &GroupError{Group: group.Name, Ref: &r, Reason: fmt.Sprintf("already in group %q", owner)}
			}
			g.byRef[ref] = group.Name
		}
		g.groups[group.Name] = group
	}
	return g, nil
}

// GroupOf returns the group name of a reference, GroupNone when unassigned
func (g *Groups) GroupOf(ref Ref) string {
	if g == nil {
		return GroupNone
	}
	if name, ok := g.byRef[ref]; ok {
		return name
	}
	return GroupNone
}

// Group returns a group by name
func (g *Groups) Group(name string) (TileGroup, bool) {
	group, ok := g.groups[name]
	return group, ok
}

// Names returns the sorted group names
func (g *Groups) Names() []string {
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
