// Package tile holds the tile map model shared by the collision resolver and the
// transition extractor.
package tile

import "fmt"

// GroupNone is the implicit group of tiles that no group claims
const GroupNone = "none"

// Ref identifies a tile by its sheet and sheet-local number
type Ref struct {
	Sheet  int `json:"sheet" yaml:"sheet"`
	Number int `json:"number" yaml:"number"`
}

// String returns "sheet:number"
func (r Ref) String() string {
	return fmt.Sprintf("%d:%d", r.Sheet, r.Number)
}

// Less orders refs by sheet, then number
func (r Ref) Less(o Ref) bool {
	if r.Sheet != o.Sheet {
		return r.Sheet < o.Sheet
	}
	return r.Number < o.Number
}

// Tile represents a single painted cell of a map.
// X and Y are pixel coordinates of the top-left corner.
type Tile struct {
	Sheet  int
	Number int
	X, Y   int
	Width  int
	Height int
	Group  string
}

// Ref returns the sheet/number reference of the tile
func (t *Tile) Ref() Ref {
	return Ref{Sheet: t.Sheet, Number: t.Number}
}

// TileX returns the horizontal grid index
func (t *Tile) TileX() int {
	return t.X / t.Width
}

// TileY returns the vertical grid index
func (t *Tile) TileY() int {
	return t.Y / t.Height
}

// Same reports whether two group names denote the same group (exact match)
func Same(a, b string) bool {
	return a == b
}

// Map is the read-only view of a tile map consumed by the core
type Map interface {
	// Tile returns nil for empty cells and for indices outside the map
	Tile(tx, ty int) *Tile
	TileWidth() int
	TileHeight() int
	WidthInTile() int
	HeightInTile() int
}
