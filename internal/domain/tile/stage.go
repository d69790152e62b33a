package tile

import "math"

// Stage is a rectangular grid of tiles. Row 0 is the top row, y grows downward.
type Stage struct {
	Name   string
	width  int
	height int
	tileW  int
	tileH  int
	tiles  []*Tile
}

// NewStage creates an empty stage of w*h tiles, each tileW*tileH pixels
func NewStage(w, h, tileW, tileH int) *Stage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Stage{
		width:  w,
		height: h,
		tileW:  tileW,
		tileH:  tileH,
		tiles:  make([]*Tile, w*h),
	}
}

func (s *Stage) inside(tx, ty int) bool {
	return tx >= 0 && tx < s.width && ty >= 0 && ty < s.height
}

// Set paints a tile at the given grid index. Out of bounds indices are ignored.
func (s *Stage) Set(tx, ty, sheet, number int, group string) *Tile {
	if !s.inside(tx, ty) {
		return nil
	}
	if group == "" {
		group = GroupNone
	}
	t := &Tile{
		Sheet:  sheet,
		Number: number,
		X:      tx * s.tileW,
		Y:      ty * s.tileH,
		Width:  s.tileW,
		Height: s.tileH,
		Group:  group,
	}
	s.tiles[ty*s.width+tx] = t
	return t
}

// Clear removes the tile at the given grid index
func (s *Stage) Clear(tx, ty int) {
	if s.inside(tx, ty) {
		s.tiles[ty*s.width+tx] = nil
	}
}

// Tile returns the tile at the given grid index, nil if empty or out of bounds
func (s *Stage) Tile(tx, ty int) *Tile {
	if !s.inside(tx, ty) {
		return nil
	}
	return s.tiles[ty*s.width+tx]
}

// TileAt returns the tile containing the given pixel coordinates
func (s *Stage) TileAt(px, py float64) *Tile {
	if s.tileW <= 0 || s.tileH <= 0 {
		return nil
	}
	// floor keeps -0.5 out of tile 0
	tx := int(math.Floor(px / float64(s.tileW)))
	ty := int(math.Floor(py / float64(s.tileH)))
	return s.Tile(tx, ty)
}

func (s *Stage) TileWidth() int    { return s.tileW }
func (s *Stage) TileHeight() int   { return s.tileH }
func (s *Stage) WidthInTile() int  { return s.width }
func (s *Stage) HeightInTile() int { return s.height }

// Regroup reassigns every painted tile's group from the registry.
// Used once at import time, before the stage is handed to the core.
func (s *Stage) Regroup(groups *Groups) {
	for _, t := range s.tiles {
		if t != nil {
			t.Group = groups.GroupOf(t.Ref())
		}
	}
}
