package rtreedb

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// nodeRecord is the on-disk shape of one node: its box, leafness, child
// indices into the flattened array, and payload (nil for directory
// nodes). Parent links are never serialized (spec §4.8) — they are
// rebuilt on Load by a post-order walk over Children.
type nodeRecord struct {
	Box      Box
	IsLeaf   bool
	Children []int
	Data     any
}

// treeFile is the full serialized form of a tree's structure.
type treeFile struct {
	RootIndex int
	Nodes     []nodeRecord
}

// Save writes a stable serial form of the tree to w: a gob-encoded
// treeFile, snappy-compressed. Payload types stored via Insert/BulkLoad
// must be registered with gob.Register before calling Save or Load, per
// the encoding/gob interface-value requirement.
func (t *Tree) Save(w io.Writer) error {
	rootIdx, records := flattenTree(t.root)
	file := treeFile{RootIndex: rootIdx, Nodes: records}

	sw := snappy.NewBufferedWriter(w)
	if err := gob.NewEncoder(sw).Encode(file); err != nil {
		return fmt.Errorf("rtreedb: encode tree: %w", err)
	}
	return sw.Close()
}

// SaveFile is a convenience wrapper around Save that writes to path.
func (t *Tree) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rtreedb: create %s: %w", path, err)
	}
	defer f.Close()
	return t.Save(f)
}

// Load reads a tree previously written by Save. maxEntries and
// splitAlgorithm configure the returned tree exactly as New does, since
// the serialized stream carries only box/leafness/data/hierarchy, not
// tree configuration (spec §4.8, §6).
func Load(r io.Reader, maxEntries int, splitAlgorithm SplitAlgorithm, opts ...Option) (*Tree, error) {
	sr := snappy.NewReader(r)
	var file treeFile
	if err := gob.NewDecoder(sr).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	root, err := rebuildTree(file)
	if err != nil {
		return nil, err
	}

	t, err := New(maxEntries, splitAlgorithm, opts...)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// LoadFile is a convenience wrapper around Load that reads from path.
func LoadFile(path string, maxEntries int, splitAlgorithm SplitAlgorithm, opts ...Option) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rtreedb: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, maxEntries, splitAlgorithm, opts...)
}

// flattenTree walks root in pre-order, assigning each node an index and
// recording its children by index.
func flattenTree(root *node) (int, []nodeRecord) {
	var order []*node
	var walk func(n *node)
	walk = func(n *node) {
		order = append(order, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)

	index := make(map[*node]int, len(order))
	for i, n := range order {
		index[n] = i
	}

	records := make([]nodeRecord, len(order))
	for i, n := range order {
		childIdx := make([]int, len(n.children))
		for j, c := range n.children {
			childIdx[j] = index[c]
		}
		records[i] = nodeRecord{Box: n.box, IsLeaf: n.isLeaf, Children: childIdx, Data: n.data}
	}
	return index[root], records
}

// rebuildTree validates a decoded treeFile and reconstructs the pointer
// tree, assigning parent links by a post-order walk over Children.
func rebuildTree(file treeFile) (*node, error) {
	n := len(file.Nodes)
	if n == 0 || file.RootIndex < 0 || file.RootIndex >= n {
		return nil, ErrCorruptStream
	}

	nodes := make([]*node, n)
	for i, rec := range file.Nodes {
		for _, ci := range rec.Children {
			if ci < 0 || ci >= n {
				return nil, ErrCorruptStream
			}
		}
		nodes[i] = &node{box: rec.Box, isLeaf: rec.IsLeaf, data: rec.Data}
	}
	for i, rec := range file.Nodes {
		for _, ci := range rec.Children {
			nodes[i].children = append(nodes[i].children, nodes[ci])
		}
	}

	var assignParents func(idx int)
	assignParents = func(idx int) {
		for _, ci := range file.Nodes[idx].Children {
			assignParents(ci)
			nodes[ci].parent = nodes[idx]
		}
	}
	assignParents(file.RootIndex)

	return nodes[file.RootIndex], nil
}
