package locate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"

	"github.com/katalvlaran/critpath/core"
)

var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("locate: graph is nil")

	// ErrEmptyIndex is returned by Nearest when no vertex is indexed.
	ErrEmptyIndex = errors.New("locate: index is empty")

	// ErrBadRadius indicates a negative or NaN radius.
	ErrBadRadius = errors.New("locate: radius must be non-negative")
)

// Index is an immutable spatial index over vertex coordinates.
type Index struct {
	tr     rtree.RTreeG[int]
	coords []orb.Point
}

// New indexes every vertex of g.
func New(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := &Index{coords: g.Coords()}
	for id, p := range ix.coords {
		pt := [2]float64{p[0], p[1]}
		ix.tr.Insert(pt, pt, id)
	}

	return ix, nil
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.tr.Len() }

// Nearest returns the vertex closest to p and its Euclidean distance.
func (ix *Index) Nearest(p orb.Point) (int, float64, error) {
	ids := ix.KNearest(p, 1)
	if len(ids) == 0 {
		return core.None, math.Inf(1), ErrEmptyIndex
	}

	return ids[0], planar.Distance(p, ix.coords[ids[0]]), nil
}

// KNearest returns up to k vertices ordered by distance to p, then by ID.
func (ix *Index) KNearest(p orb.Point, k int) []int {
	if k <= 0 {
		return nil
	}
	type hit struct {
		id int
		d2 float64
	}
	var hits []hit
	target := [2]float64{p[0], p[1]}
	ix.tr.Nearby(rtree.BoxDist[float64, int](target, target, nil), func(_, _ [2]float64, id int, d2 float64) bool {
		// Keep collecting past k while distances tie with the k-th hit.
		if len(hits) >= k && d2 > hits[len(hits)-1].d2 {
			return false
		}
		hits = append(hits, hit{id: id, d2: d2})
		return true
	})
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].d2 != hits[j].d2 {
			return hits[i].d2 < hits[j].d2
		}
		return hits[i].id < hits[j].id
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}

	return out
}

// Within returns the vertices inside b (boundary included), ascending.
func (ix *Index) Within(b orb.Bound) []int {
	var out []int
	ix.tr.Search([2]float64{b.Min[0], b.Min[1]}, [2]float64{b.Max[0], b.Max[1]},
		func(_, _ [2]float64, id int) bool {
			out = append(out, id)
			return true
		})
	sort.Ints(out)

	return out
}

// Radius returns the vertices at distance ≤ r from p, ascending.
func (ix *Index) Radius(p orb.Point, r float64) ([]int, error) {
	if r < 0 || math.IsNaN(r) {
		return nil, fmt.Errorf("%w: %g", ErrBadRadius, r)
	}
	var out []int
	for _, id := range ix.Within(orb.Bound{Min: orb.Point{p[0] - r, p[1] - r}, Max: orb.Point{p[0] + r, p[1] + r}}) {
		if planar.Distance(p, ix.coords[id]) <= r {
			out = append(out, id)
		}
	}

	return out, nil
}
