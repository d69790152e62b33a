// Package collision implements tile collision formulas, categories and the
// ray-walking resolver used by entity movement.
package collision

import (
	"fmt"
	"slices"
	"strings"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// Axis is a movement or evaluation axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// ParseAxis parses "x" or "y" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisX, fmt.Errorf("unknown axis %q", s)
	}
}

// Orientation names a neighbor of a tile
type Orientation string

const (
	Top    Orientation = "top"
	Bottom Orientation = "bottom"
	Left   Orientation = "left"
	Right  Orientation = "right"
)

// Offset returns the grid delta toward the neighbor (y grows downward)
func (o Orientation) Offset() (dx, dy int, ok bool) {
	switch o {
	case Top:
		return 0, -1, true
	case Bottom:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}
	return 0, 0, false
}

// Constraint lists, per orientation, the neighbor groups that disable a formula
type Constraint map[Orientation][]string

// Clone returns a deep copy; nil stays nil
func (c Constraint) Clone() Constraint {
	if c == nil {
		return nil
	}
	out := make(Constraint, len(c))
	for orientation, groups := range c {
		out[orientation] = slices.Clone(groups)
	}
	return out
}

// Allows reports whether none of the tile's constrained neighbors belong to a
// forbidden group. Missing neighbors never forbid.
func (c Constraint) Allows(m tile.Map, t *tile.Tile) bool {
	if len(c) == 0 || m == nil {
		return true
	}
	tx, ty := t.TileX(), t.TileY()
	for orientation, groups := range c {
		dx, dy, ok := orientation.Offset()
		if !ok {
			continue
		}
		neighbor := m.Tile(tx+dx, ty+dy)
		if neighbor == nil {
			continue
		}
		for _, g := range groups {
			if tile.Same(neighbor.Group, g) {
				return false
			}
		}
	}
	return true
}

// Formula is a linear function over a tile-local coordinate:
// output = Coefficient*input + Offset, valid for input in [Min, Max].
type Formula struct {
	Name        string
	Input       Axis
	Output      Axis
	Min, Max    float64
	Coefficient float64
	Offset      float64
	Constraint  Constraint
}

// Applies reports whether the tile-local input lies within the formula range
func (f *Formula) Applies(input float64) bool {
	return input >= f.Min && input <= f.Max
}

// Evaluate computes the tile-local output for a tile-local input.
// The second result is false when the input is outside the range.
func Evaluate(f *Formula, input float64) (float64, bool) {
	if !f.Applies(input) {
		return 0, false
	}
	return f.Coefficient*input + f.Offset, true
}

// World evaluates the formula for a world input coordinate on the given tile and
// returns the world output coordinate
func (f *Formula) World(t *tile.Tile, worldInput float64) (float64, bool) {
	local := worldInput - origin(t, f.Input)
	value, ok := Evaluate(f, local)
	if !ok {
		return 0, false
	}
	return origin(t, f.Output) + value, true
}

func (f *Formula) String() string {
	return f.Name
}

func origin(t *tile.Tile, axis Axis) float64 {
	if axis == AxisY {
		return float64(t.Y)
	}
	return float64(t.X)
}
