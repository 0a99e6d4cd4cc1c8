package rtreedb

import (
	"math"
	"sort"
)

// quadraticSplit implements spec §4.4's quadratic split: seed on the pair
// wasting the most area, then repeatedly assign the entry with the
// strongest group preference to its cheaper group.
func quadraticSplit(children []*node) ([]*node, []*node) {
	n := len(children)
	seedA, seedB := 0, 1
	bestWaste := math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			waste := area(combine(children[i].box, children[j].box)) - area(children[i].box) - area(children[j].box)
			if waste > bestWaste {
				bestWaste = waste
				seedA, seedB = i, j
			}
		}
	}

	return assignRemaining(children, seedA, seedB,
		func(inc1, inc2 float64) float64 { return math.Abs(inc1 - inc2) },
		func(candidate, best float64) bool { return candidate > best },
	)
}

// linearSplit implements spec §4.4's linear split: seed on the axis with
// the larger first/last separation, then repeatedly assign the entry with
// the cheapest fit.
func linearSplit(children []*node) ([]*node, []*node) {
	n := len(children)

	byX := sortedIndices(children, true)
	sepX := children[byX[n-1]].box.MinX - children[byX[0]].box.MaxX

	byY := sortedIndices(children, false)
	sepY := children[byY[n-1]].box.MinY - children[byY[0]].box.MaxY

	seedA, seedB := byX[0], byX[n-1]
	if sepY > sepX {
		seedA, seedB = byY[0], byY[n-1]
	}

	return assignRemaining(children, seedA, seedB,
		func(inc1, inc2 float64) float64 { return math.Min(inc1, inc2) },
		func(candidate, best float64) bool { return candidate < best },
	)
}

// rstarSplit implements spec §4.4's R*-style split: pick the axis
// minimizing total boundary perimeter across all split points, then pick
// the split point on that axis minimizing overlap area. The loop
// deliberately stops at n-2, skipping the final valid split index, per
// spec §4.4/§9.3.
func rstarSplit(children []*node) ([]*node, []*node) {
	n := len(children)

	sortedX := axisOrder(children, true)
	sortedY := axisOrder(children, false)

	sumX := perimeterSum(sortedX)
	sumY := perimeterSum(sortedY)

	chosen := sortedX
	if sumY < sumX {
		chosen = sortedY
	}

	bestK := 1
	bestOverlap := math.Inf(1)
	for k := 1; k <= n-2; k++ {
		left := boundOf(chosen[:k])
		right := boundOf(chosen[k:])
		o := overlapArea(left, right)
		if o < bestOverlap {
			bestOverlap = o
			bestK = k
		}
	}

	groupA := append([]*node{}, chosen[:bestK]...)
	groupB := append([]*node{}, chosen[bestK:]...)
	return groupA, groupB
}

// axisOrder returns children sorted by their lower edge on the given axis.
func axisOrder(children []*node, byX bool) []*node {
	out := append([]*node{}, children...)
	sort.Slice(out, func(i, j int) bool {
		if byX {
			return out[i].box.MinX < out[j].box.MinX
		}
		return out[i].box.MinY < out[j].box.MinY
	})
	return out
}

// perimeterSum sums, over every split point k in [1, n-1], the combined
// perimeter of the prefix and suffix MBRs of sorted.
func perimeterSum(sorted []*node) float64 {
	n := len(sorted)
	total := 0.0
	for k := 1; k <= n-1; k++ {
		total += perimeter(boundOf(sorted[:k])) + perimeter(boundOf(sorted[k:]))
	}
	return total
}

// boundOf returns the MBR of a non-empty slice of nodes.
func boundOf(nodes []*node) Box {
	b := nodes[0].box
	for _, n := range nodes[1:] {
		b = combine(b, n.box)
	}
	return b
}

// sortedIndices returns indices into children sorted by lower edge on the
// given axis.
func sortedIndices(children []*node, byX bool) []int {
	idx := make([]int, len(children))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if byX {
			return children[idx[a]].box.MinX < children[idx[b]].box.MinX
		}
		return children[idx[a]].box.MinY < children[idx[b]].box.MinY
	})
	return idx
}

// assignRemaining implements the shared quadratic/linear assignment loop:
// seed two groups, then repeatedly pick the unassigned entry that scores
// best (per `better`) according to `score(inc1, inc2)`, assigning it to
// whichever group requires the smaller enlargement (ties favor group A).
func assignRemaining(
	children []*node,
	seedA, seedB int,
	score func(inc1, inc2 float64) float64,
	better func(candidate, best float64) bool,
) ([]*node, []*node) {
	n := len(children)
	assigned := make([]bool, n)
	assigned[seedA] = true
	assigned[seedB] = true

	groupA := []*node{children[seedA]}
	groupB := []*node{children[seedB]}
	boxA := children[seedA].box
	boxB := children[seedB].box

	remaining := n - 2
	for remaining > 0 {
		bestIdx := -1
		var bestScore, bestInc1, bestInc2 float64
		haveBest := false
		for i := 0; i < n; i++ {
			if assigned[i] {
				continue
			}
			inc1 := enlargement(boxA, children[i].box)
			inc2 := enlargement(boxB, children[i].box)
			s := score(inc1, inc2)
			if !haveBest || better(s, bestScore) {
				haveBest = true
				bestScore = s
				bestIdx = i
				bestInc1, bestInc2 = inc1, inc2
			}
		}
		assigned[bestIdx] = true
		if bestInc1 <= bestInc2 {
			groupA = append(groupA, children[bestIdx])
			boxA = combine(boxA, children[bestIdx].box)
		} else {
			groupB = append(groupB, children[bestIdx])
			boxB = combine(boxB, children[bestIdx].box)
		}
		remaining--
	}
	return groupA, groupB
}
