package rtreedb

// Insert adds a new (box, data) pair to the tree. It fails if data is nil
// or box is invalid; on failure the tree is left unmodified.
func (t *Tree) Insert(box Box, data any) error {
	if data == nil {
		return ErrNilData
	}
	if !box.valid() {
		return ErrInvalidBox
	}
	t.insertEntry(box, data)
	return nil
}

// insertEntry performs the choose-leaf/append/adjust/overflow sequence
// (spec §4.3) without validating box or data, so condensation can reinsert
// orphaned entries through the same path.
func (t *Tree) insertEntry(box Box, data any) {
	leaf := t.chooseLeaf(box)
	entry := newEntryNode(box, data)
	leaf.addChild(entry)
	t.log.Debugf("insert: leaf now has %d entries", len(leaf.children))

	t.adjustUpward(leaf)

	if len(leaf.children) > t.maxEntries {
		t.overflow(leaf)
	}
}

// chooseLeaf descends from the root picking, at each internal node, the
// child requiring the smallest area enlargement to cover box. Ties keep
// the first child encountered.
func (t *Tree) chooseLeaf(box Box) *node {
	cur := t.root
	for !cur.isLeaf {
		best := 0
		bestEnlargement := enlargement(cur.children[0].box, box)
		for i := 1; i < len(cur.children); i++ {
			e := enlargement(cur.children[i].box, box)
			if e < bestEnlargement {
				bestEnlargement = e
				best = i
			}
		}
		cur = cur.children[best]
	}
	return cur
}

// adjustUpward walks from start toward the root, recomputing each
// ancestor's box from its children. A directory node that has been
// emptied along the way is detached from its parent instead of having its
// box recomputed; if that empties the root, the tree resets to an empty
// leaf root (spec §4.3 step 3, open question 4).
func (t *Tree) adjustUpward(start *node) {
	cur := start
	for cur != t.root {
		parent := cur.parent
		if len(cur.children) == 0 {
			parent.removeChild(cur)
		} else {
			cur.recomputeBox()
		}
		cur = parent
	}
	if len(t.root.children) == 0 {
		if !t.root.isLeaf {
			t.reset()
		}
		return
	}
	t.root.recomputeBox()
}

// overflow resolves a node holding more than maxEntries children by
// splitting it and propagating the split upward, promoting the root when
// necessary (spec §4.3 step 4).
func (t *Tree) overflow(n *node) {
	g1, g2 := t.splitNode(n)
	t.log.Debugf("split (%s): %d/%d children", t.splitAlgorithm, len(g1.children), len(g2.children))

	if n == t.root {
		newRoot := newDirectoryNode(false)
		newRoot.addChild(g1)
		newRoot.addChild(g2)
		newRoot.recomputeBox()
		t.root = newRoot
		return
	}

	parent := n.parent
	parent.removeChild(n)
	parent.addChild(g1)
	parent.addChild(g2)

	t.adjustUpward(parent)

	if len(parent.children) > t.maxEntries {
		t.overflow(parent)
	}
}

// splitNode dispatches to the configured split heuristic and wraps each
// resulting group in a fresh directory node preserving n's leafness.
func (t *Tree) splitNode(n *node) (*node, *node) {
	var groupA, groupB []*node
	switch t.splitAlgorithm {
	case Linear:
		groupA, groupB = linearSplit(n.children)
	case RStar:
		groupA, groupB = rstarSplit(n.children)
	default:
		groupA, groupB = quadraticSplit(n.children)
	}

	g1 := newDirectoryNode(n.isLeaf)
	for _, c := range groupA {
		g1.addChild(c)
	}
	g1.recomputeBox()

	g2 := newDirectoryNode(n.isLeaf)
	for _, c := range groupB {
		g2.addChild(c)
	}
	g2.recomputeBox()

	return g1, g2
}
