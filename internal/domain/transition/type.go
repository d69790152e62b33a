// Package transition classifies painted tiles into group-to-group transitions
// and aggregates the tiles used for each transition across maps.
package transition

import "fmt"

// Type is the shape of a transition, named after where the outer group lies
type Type int

const (
	None Type = iota
	Center
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	CornerUpLeft
	CornerUpRight
	CornerDownLeft
	CornerDownRight
	DiagonalUpLeft
	DiagonalUpRight
	Island
)

var typeNames = [...]string{
	None:            "none",
	Center:          "center",
	Up:              "up",
	Down:            "down",
	Left:            "left",
	Right:           "right",
	UpLeft:          "up_left",
	UpRight:         "up_right",
	DownLeft:        "down_left",
	DownRight:       "down_right",
	CornerUpLeft:    "corner_up_left",
	CornerUpRight:   "corner_up_right",
	CornerDownLeft:  "corner_down_left",
	CornerDownRight: "corner_down_right",
	DiagonalUpLeft:  "diagonal_up_left",
	DiagonalUpRight: "diagonal_up_right",
	Island:          "island",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType is the inverse of String
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return None, fmt.Errorf("unknown transition type %q", s)
}

// IsTransition reports whether the type describes a boundary between two groups
func (t Type) IsTransition() bool {
	return t != None && t != Center
}

// Neighbor bit positions, raster order around the tile: top row left to right,
// middle row left then right, bottom row left to right. A set bit means the
// neighbor is in the tile's own group.
const (
	BitTopLeft = iota
	BitTop
	BitTopRight
	BitLeft
	BitRight
	BitBottomLeft
	BitBottom
	BitBottomRight

	Bits = 8
)

// AllSame is the pattern of a tile surrounded by its own group
const AllSame uint8 = 0xFF

var table [1 << Bits]Type

func init() {
	for bits := 0; bits < len(table); bits++ {
		table[bits] = classify(uint8(bits))
	}
}

// FromBits returns the type of a neighbor pattern
func FromBits(bits uint8) Type {
	return table[bits]
}

func has(bits uint8, bit int) bool {
	return bits&(1<<bit) != 0
}

// Normalize clears diagonal bits that do not affect the shape: a corner neighbor
// only matters when both of its adjacent edge neighbors are in the group.
func Normalize(bits uint8) uint8 {
	drop := func(diag, a, b int) {
		if !has(bits, a) || !has(bits, b) {
			bits &^= 1 << diag
		}
	}
	drop(BitTopLeft, BitTop, BitLeft)
	drop(BitTopRight, BitTop, BitRight)
	drop(BitBottomLeft, BitBottom, BitLeft)
	drop(BitBottomRight, BitBottom, BitRight)
	return bits
}

func classify(raw uint8) Type {
	bits := Normalize(raw)
	up, down := !has(bits, BitTop), !has(bits, BitBottom)
	left, right := !has(bits, BitLeft), !has(bits, BitRight)

	tl, tr := !has(bits, BitTopLeft), !has(bits, BitTopRight)
	bl, br := !has(bits, BitBottomLeft), !has(bits, BitBottomRight)

	switch {
	case !up && !down && !left && !right:
		return corners(tl, tr, bl, br)
	case up && !down && !left && !right:
		return when(!bl && !br, Up)
	case down && !up && !left && !right:
		return when(!tl && !tr, Down)
	case left && !up && !down && !right:
		return when(!tr && !br, Left)
	case right && !up && !down && !left:
		return when(!tl && !bl, Right)
	case up && left && !down && !right:
		return when(!br, UpLeft)
	case up && right && !down && !left:
		return when(!bl, UpRight)
	case down && left && !up && !right:
		return when(!tr, DownLeft)
	case down && right && !up && !left:
		return when(!tl, DownRight)
	case up && down && left && right:
		return Island
	}
	return None
}

// corners classifies a tile whose four edge neighbors are all in the group
func corners(tl, tr, bl, br bool) Type {
	switch [4]bool{tl, tr, bl, br} {
	case [4]bool{false, false, false, false}:
		return Center
	case [4]bool{true, false, false, false}:
		return CornerUpLeft
	case [4]bool{false, true, false, false}:
		return CornerUpRight
	case [4]bool{false, false, true, false}:
		return CornerDownLeft
	case [4]bool{false, false, false, true}:
		return CornerDownRight
	case [4]bool{true, false, false, true}:
		return DiagonalUpLeft
	case [4]bool{false, true, true, false}:
		return DiagonalUpRight
	}
	return None
}

func when(ok bool, t Type) Type {
	if ok {
		return t
	}
	return None
}
