package rtreedb

import "sort"

// BulkItem is one (box, data) pair to load in a single BulkLoad call.
type BulkItem struct {
	Box  Box
	Data any
}

// BulkLoad replaces the tree's contents entirely, building a balanced
// tree bottom-up from items (spec §4.7): sort by X-centroid, partition
// into equalized leaf groups, then repeat one level up until a single
// root remains. Fill may fall below minFill for the last group at each
// level; condensation does not run afterward. An empty items list leaves
// the tree as an empty leaf root.
func (t *Tree) BulkLoad(items []BulkItem) {
	if len(items) == 0 {
		t.reset()
		return
	}

	sorted := append([]BulkItem{}, items...)
	sortByCentroid(sorted)

	level := buildLeafLevel(sorted, t.maxEntries)
	for len(level) > 1 {
		level = buildParentLevel(level, t.maxEntries)
	}

	t.root = level[0]
	t.log.Debugf("bulk load: %d items into tree of height %d", len(items), t.height())
}

func sortByCentroid(items []BulkItem) {
	sort.Slice(items, func(i, j int) bool {
		bi, bj := items[i].Box, items[j].Box
		return (bi.MinX + bi.MaxX) < (bj.MinX + bj.MaxX)
	})
}

// groupSize returns the equalized group size for n items capped at
// maxEntries per group.
func groupSize(n, maxEntries int) int {
	numGroups := (n + maxEntries - 1) / maxEntries
	if numGroups < 1 {
		numGroups = 1
	}
	return (n + numGroups - 1) / numGroups
}

func buildLeafLevel(items []BulkItem, maxEntries int) []*node {
	size := groupSize(len(items), maxEntries)
	var leaves []*node
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		leaf := newDirectoryNode(true)
		for _, item := range items[i:end] {
			leaf.addChild(newEntryNode(item.Box, item.Data))
		}
		leaf.recomputeBox()
		leaves = append(leaves, leaf)
	}
	return leaves
}

func buildParentLevel(nodes []*node, maxEntries int) []*node {
	sorted := append([]*node{}, nodes...)
	sort.Slice(sorted, func(i, j int) bool {
		bi, bj := sorted[i].box, sorted[j].box
		return (bi.MinX + bi.MaxX) < (bj.MinX + bj.MaxX)
	})

	size := groupSize(len(sorted), maxEntries)
	var parents []*node
	for i := 0; i < len(sorted); i += size {
		end := i + size
		if end > len(sorted) {
			end = len(sorted)
		}
		parent := newDirectoryNode(false)
		for _, c := range sorted[i:end] {
			parent.addChild(c)
		}
		parent.recomputeBox()
		parents = append(parents, parent)
	}
	return parents
}
