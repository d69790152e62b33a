package transition

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/tilekit/internal/domain/tile"
)

// Transition is the classified relation between a tile's group and its neighbors
type Transition struct {
	Type Type
	In   string
	Out  string
}

func (t Transition) String() string {
	return fmt.Sprintf("%s %s->%s", t.Type, t.In, t.Out)
}

// RefSet is a set of tile references
type RefSet map[tile.Ref]struct{}

// Add inserts refs into the set
func (s RefSet) Add(refs ...tile.Ref) {
	for _, r := range refs {
		s[r] = struct{}{}
	}
}

// Sorted returns the refs ordered by sheet then number
func (s RefSet) Sorted() []tile.Ref {
	out := make([]tile.Ref, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Transitions buckets tile references by transition
type Transitions map[Transition]RefSet

// Add records a tile reference under a transition
func (ts Transitions) Add(t Transition, ref tile.Ref) {
	set, ok := ts[t]
	if !ok {
		set = make(RefSet)
		ts[t] = set
	}
	set.Add(ref)
}

// Merge unions other into ts
func (ts Transitions) Merge(other Transitions) {
	for t, refs := range other {
		for ref := range refs {
			ts.Add(t, ref)
		}
	}
}

// Keys returns the transitions ordered by in group, out group, then type
func (ts Transitions) Keys() []Transition {
	keys := make([]Transition, 0, len(ts))
	for t := range ts {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.In != b.In {
			return a.In < b.In
		}
		if a.Out != b.Out {
			return a.Out < b.Out
		}
		return a.Type < b.Type
	})
	return keys
}

// Classify computes the transition of a tile from its 8 neighbors.
// A missing neighbor or a third group yields None.
func Classify(m tile.Map, t *tile.Tile) Transition {
	in := t.Group
	tx, ty := t.TileX(), t.TileY()

	out := in
	hasOut := false
	var bits uint8
	i := 0
	for v := ty - 1; v <= ty+1; v++ {
		for h := tx - 1; h <= tx+1; h++ {
			if h == tx && v == ty {
				continue
			}
			neighbor := m.Tile(h, v)
			if neighbor == nil {
				return Transition{Type: None, In: in, Out: out}
			}
			g := neighbor.Group
			switch {
			case tile.Same(g, in):
				bits |= 1 << i
			case !hasOut:
				out, hasOut = g, true
			case tile.Same(g, out):
			default:
				return Transition{Type: None, In: in, Out: out}
			}
			i++
		}
	}

	return Transition{Type: FromBits(bits), In: in, Out: out}
}

// Extract classifies every interior tile of the map. Border tiles, empty cells
// and tiles that are not a transition are skipped.
func Extract(m tile.Map) Transitions {
	transitions := make(Transitions)
	for ty := 1; ty < m.HeightInTile()-1; ty++ {
		for tx := 1; tx < m.WidthInTile()-1; tx++ {
			t := m.Tile(tx, ty)
			if t == nil {
				continue
			}
			transition := Classify(m, t)
			if transition.Type.IsTransition() {
				transitions.Add(transition, t.Ref())
			}
		}
	}
	return transitions
}

// ExtractAll unions the transitions of several maps. Refs are deduplicated.
func ExtractAll(maps ...tile.Map) Transitions {
	transitions := make(Transitions)
	for _, m := range maps {
		transitions.Merge(Extract(m))
	}
	return transitions
}

// ExtractParallel is ExtractAll with one goroutine per map, at most limit at a
// time (limit <= 0 means no limit)
func ExtractParallel(ctx context.Context, limit int, maps ...tile.Map) (Transitions, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	transitions := make(Transitions)
	for _, m := range maps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			current := Extract(m)

			mu.Lock()
			transitions.Merge(current)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return transitions, nil
}
