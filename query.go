package rtreedb

import (
	"math"
	"sort"
)

// Search returns the payloads of every entry whose box intersects query,
// pruning subtrees whose MBR does not (spec §4.6). Result order follows
// tree traversal order and carries no other meaning.
func (t *Tree) Search(query Box) []any {
	var results []any
	var recurse func(n *node)
	recurse = func(n *node) {
		if !intersects(n.box, query) {
			return
		}
		if n.isEntry() {
			results = append(results, n.data)
			return
		}
		for _, c := range n.children {
			recurse(c)
		}
	}
	recurse(t.root)
	return results
}

// PointQuery returns the payloads of every entry whose box contains
// (x, y), inclusive of the boundary.
func (t *Tree) PointQuery(x, y float64) []any {
	var results []any
	var recurse func(n *node)
	recurse = func(n *node) {
		if !containsPoint(n.box, x, y) {
			return
		}
		if n.isEntry() {
			results = append(results, n.data)
			return
		}
		for _, c := range n.children {
			recurse(c)
		}
	}
	recurse(t.root)
	return results
}

// Nearest returns the payload closest to (x, y) by Euclidean distance to
// its box, and that distance. It returns (nil, +Inf) on an empty tree.
// Children are visited in ascending order of MBR distance as a pruning
// heuristic, but bestDist is not used to skip subtrees (spec §4.6/§9.5).
func (t *Tree) Nearest(x, y float64) (any, float64) {
	var best any
	bestDist := math.Inf(1)

	var recurse func(n *node)
	recurse = func(n *node) {
		if n.isEntry() {
			d := mbrDistance(n.box, x, y)
			if d < bestDist {
				bestDist = d
				best = n.data
			}
			return
		}
		ordered := append([]*node{}, n.children...)
		sort.Slice(ordered, func(i, j int) bool {
			return mbrDistance(ordered[i].box, x, y) < mbrDistance(ordered[j].box, x, y)
		})
		for _, c := range ordered {
			recurse(c)
		}
	}
	recurse(t.root)

	return best, bestDist
}
