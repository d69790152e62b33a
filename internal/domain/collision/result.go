package collision

import (
	"strconv"
	"strings"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// Result is the outcome of one collision query.
// X is set by horizontal categories, Y by vertical ones; both nil when nothing was hit.
type Result struct {
	X        *float64
	Y        *float64
	Tile     *tile.Tile
	Formulas []*Formula
}

// Collided reports whether any coordinate was produced
func (r Result) Collided() bool {
	return r.X != nil || r.Y != nil
}

// StartWith reports whether one of the formulas that produced the result has a
// name starting with prefix
func (r Result) StartWith(prefix string) bool {
	for _, f := range r.Formulas {
		if strings.HasPrefix(f.Name, prefix) {
			return true
		}
	}
	return false
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteString("Result [x=")
	b.WriteString(formatCoord(r.X))
	b.WriteString(", y=")
	b.WriteString(formatCoord(r.Y))
	b.WriteString(", [")
	for i, f := range r.Formulas {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
	}
	b.WriteString("]]")
	return b.String()
}

func formatCoord(v *float64) string {
	if v == nil {
		return "null"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
