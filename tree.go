package rtreedb

import "github.com/sirupsen/logrus"

// SplitAlgorithm selects the heuristic used to partition an overflowing
// node's children into two groups (spec.md §4.4).
type SplitAlgorithm int

const (
	// Quadratic picks the pair of children wasting the most area as seeds,
	// then assigns the rest by strongest preference.
	Quadratic SplitAlgorithm = iota
	// Linear picks seeds by largest per-axis separation, then assigns the
	// rest by cheapest fit.
	Linear
	// RStar picks the axis minimizing total perimeter across split points,
	// then the split point on that axis minimizing resulting overlap.
	RStar
)

func (a SplitAlgorithm) String() string {
	switch a {
	case Quadratic:
		return "quadratic"
	case Linear:
		return "linear"
	case RStar:
		return "rstar"
	default:
		return "unknown"
	}
}

func (a SplitAlgorithm) valid() bool {
	switch a {
	case Quadratic, Linear, RStar:
		return true
	default:
		return false
	}
}

// Tree is an in-memory R-tree mapping axis-aligned rectangles to opaque
// payloads. The zero value is not usable; construct with New.
type Tree struct {
	root           *node
	maxEntries     int
	minFill        int
	splitAlgorithm SplitAlgorithm
	log            logrus.FieldLogger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger installs a structured logger used for Debug/Warn diagnostics
// during insertion, splitting, bulk loading, condensation, and deletion
// misses. Save and Load do not log. The default
// logger is silent below Warn.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tree) {
		t.log = l
	}
}

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// New constructs an empty Tree. maxEntries governs fan-out and must be at
// least 2; splitAlgorithm selects which of the three split heuristics
// resolves node overflow.
func New(maxEntries int, splitAlgorithm SplitAlgorithm, opts ...Option) (*Tree, error) {
	if maxEntries < 2 {
		return nil, ErrInvalidMaxEntries
	}
	if !splitAlgorithm.valid() {
		return nil, ErrUnknownSplitAlgorithm
	}
	t := &Tree{
		root:           newDirectoryNode(true),
		maxEntries:     maxEntries,
		minFill:        maxEntries / 2,
		splitAlgorithm: splitAlgorithm,
		log:            defaultLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MaxEntries returns the tree's configured fan-out cap.
func (t *Tree) MaxEntries() int {
	return t.maxEntries
}

// SplitAlgorithm returns the tree's configured split heuristic.
func (t *Tree) SplitAlgorithm() SplitAlgorithm {
	return t.splitAlgorithm
}

// reset restores the tree to an empty leaf root, used when condensation or
// adjust leaves an internal root with no children. A leaf root that loses
// its last entry is kept as it is.
func (t *Tree) reset() {
	t.root = newDirectoryNode(true)
}
