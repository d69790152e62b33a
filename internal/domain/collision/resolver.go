package collision

import (
	"math"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// epsilon absorbs float noise when comparing ray parameters and coordinates
const epsilon = 1e-9

// Point is a world position in pixels
type Point struct {
	X, Y float64
}

func (p Point) along(axis Axis) float64 {
	if axis == AxisY {
		return p.Y
	}
	return p.X
}

// Resolver computes tile collisions against a map using a registry
type Resolver struct {
	m        tile.Map
	registry *Registry
}

// NewResolver creates a resolver. Neither the map nor the registry may change
// while the resolver is in use.
func NewResolver(m tile.Map, registry *Registry) *Resolver {
	return &Resolver{m: m, registry: registry}
}

// ComputeCollisions resolves each category independently
func (r *Resolver) ComputeCollisions(from, to Point, categories ...*Category) []Result {
	results := make([]Result, 0, len(categories))
	for _, c := range categories {
		results = append(results, r.ComputeCollision(from, to, c))
	}
	return results
}

// ComputeCollision walks the tiles crossed by the movement from -> to and returns
// the nearest collision produced by the category formulas.
func (r *Resolver) ComputeCollision(from, to Point, category *Category) Result {
	if category == nil || len(category.Formulas) == 0 {
		return Result{}
	}
	tw := float64(r.m.TileWidth())
	th := float64(r.m.TileHeight())
	if tw <= 0 || th <= 0 {
		return Result{}
	}

	o := Point{X: from.X + category.OffsetX, Y: from.Y + category.OffsetY}
	d := Point{X: to.X - from.X, Y: to.Y - from.Y}
	if d.X == 0 && d.Y == 0 {
		return Result{}
	}

	var result Result
	r.walk(o, d, tw, th, func(t *tile.Tile, tEnter, tExit float64) bool {
		hit, ok := r.testTile(t, category, o, d, tEnter, tExit)
		if !ok {
			return false
		}
		result = hit
		return true
	})
	return result
}

// walk visits the tiles crossed by the segment o -> o+d in travel order.
// The segment is clipped to the map first, so off-map length costs nothing.
// visit returns true to stop.
func (r *Resolver) walk(o, d Point, tw, th float64, visit func(t *tile.Tile, tEnter, tExit float64) bool) {
	width := float64(r.m.WidthInTile()) * tw
	height := float64(r.m.HeightInTile()) * th
	tMin, tMax, ok := clip(o, d, width, height)
	if !ok {
		return
	}

	cx := int(math.Floor((o.X + tMin*d.X) / tw))
	cy := int(math.Floor((o.Y + tMin*d.Y) / th))
	ex := int(math.Floor((o.X + tMax*d.X) / tw))
	ey := int(math.Floor((o.Y + tMax*d.Y) / th))

	stepX, tMaxX, tDeltaX := traversal(o.X, d.X, cx, tw)
	stepY, tMaxY, tDeltaY := traversal(o.Y, d.Y, cy, th)
	dominantX := math.Abs(d.X) >= math.Abs(d.Y)

	maxSteps := abs(ex-cx) + abs(ey-cy) + 2
	tEnter := tMin
	for i := 0; i < maxSteps; i++ {
		next := math.Min(tMaxX, tMaxY)
		tExit := math.Min(next, tMax)
		if t := r.m.Tile(cx, cy); t != nil {
			if visit(t, tEnter, tExit) {
				return
			}
		}
		if (cx == ex && cy == ey) || next > tMax+epsilon {
			return
		}

		switch {
		case tMaxX < tMaxY, tMaxX == tMaxY && dominantX:
			cx += stepX
			tEnter = tMaxX
			tMaxX += tDeltaX
		default:
			cy += stepY
			tEnter = tMaxY
			tMaxY += tDeltaY
		}
	}
}

// clip intersects the parameter range [0, 1] of o -> o+d with the rectangle
// [0, width] x [0, height]
func clip(o, d Point, width, height float64) (tMin, tMax float64, ok bool) {
	tMin, tMax = 0, 1
	for _, axis := range [2]struct{ origin, delta, size float64 }{
		{o.X, d.X, width},
		{o.Y, d.Y, height},
	} {
		if axis.delta == 0 {
			if axis.origin < 0 || axis.origin > axis.size {
				return 0, 0, false
			}
			continue
		}
		t0 := -axis.origin / axis.delta
		t1 := (axis.size - axis.origin) / axis.delta
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
	}
	return tMin, tMax, tMin <= tMax
}

// traversal returns the step direction, the ray parameter of the first cell
// boundary and the parameter span of one cell along an axis
func traversal(origin, delta float64, cell int, size float64) (step int, tMax, tDelta float64) {
	switch {
	case delta > 0:
		return 1, (float64(cell+1)*size - origin) / delta, size / delta
	case delta < 0:
		return -1, (float64(cell)*size - origin) / delta, -size / delta
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// testTile intersects the ray segment [tEnter, tExit] with every category formula
// painted on the tile
func (r *Resolver) testTile(t *tile.Tile, c *Category, o, d Point, tEnter, tExit float64) (Result, bool) {
	formulas := r.registry.CategoryFormulas(c, t)
	if len(formulas) == 0 {
		return Result{}, false
	}

	bestT := math.Inf(1)
	var bestValue float64
	var hits []*Formula
	for _, f := range formulas {
		if !f.Constraint.Allows(r.m, t) {
			continue
		}
		at, value, ok := intersect(f, t, o, d, tEnter, tExit)
		if !ok {
			continue
		}
		switch {
		case at < bestT-epsilon:
			bestT = at
			bestValue = value
			hits = []*Formula{f}
		case math.Abs(at-bestT) <= epsilon && math.Abs(value-bestValue) <= epsilon:
			hits = append(hits, f)
		}
	}
	if len(hits) == 0 {
		return Result{}, false
	}

	res := Result{Tile: t, Formulas: hits}
	if c.Axis == AxisY {
		y := bestValue - c.OffsetY
		res.Y = &y
	} else {
		x := bestValue - c.OffsetX
		res.X = &x
	}
	return res, true
}

// intersect finds where the ray crosses the formula surface inside the tile.
// The surface is out = tileOut + f(in - tileIn); rays parallel to it never hit.
func intersect(f *Formula, t *tile.Tile, o, d Point, tEnter, tExit float64) (at, value float64, ok bool) {
	tileIn := origin(t, f.Input)
	tileOut := origin(t, f.Output)

	inO, inD := o.along(f.Input), d.along(f.Input)
	outO, outD := o.along(f.Output), d.along(f.Output)

	h0 := outO - tileOut - f.Coefficient*(inO-tileIn) - f.Offset
	h1 := outD - f.Coefficient*inD
	if h1 == 0 {
		return 0, 0, false
	}

	at = -h0 / h1
	lo := math.Max(tEnter, 0)
	hi := math.Min(tExit, 1)
	if at < lo-epsilon || at > hi+epsilon {
		return 0, 0, false
	}
	at = math.Min(math.Max(at, lo), hi)

	local, ok := Evaluate(f, snap(inO+at*inD-tileIn, f.Min, f.Max))
	if !ok {
		return 0, 0, false
	}
	return at, tileOut + local, true
}

// snap pulls an input that misses the range by float noise back onto its bound
func snap(v, lo, hi float64) float64 {
	const tolerance = 1e-6
	if v < lo && v >= lo-tolerance {
		return lo
	}
	if v > hi && v <= hi+tolerance {
		return hi
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
