package rtreedb

import "errors"

// Sentinel errors returned by package operations. Callers should compare
// against these with errors.Is rather than string matching.
var (
	// ErrInvalidMaxEntries is returned by New when maxEntries < 2.
	ErrInvalidMaxEntries = errors.New("rtreedb: maxEntries must be at least 2")

	// ErrInvalidBox is returned when a rectangle violates minX <= maxX and
	// minY <= maxY.
	ErrInvalidBox = errors.New("rtreedb: invalid box: min must not exceed max")

	// ErrNilData is returned by Insert when data is nil.
	ErrNilData = errors.New("rtreedb: data must not be nil")

	// ErrCorruptStream is returned by Load when the serialized stream is
	// missing its root or otherwise malformed.
	ErrCorruptStream = errors.New("rtreedb: corrupt or truncated stream")

	// ErrUnknownSplitAlgorithm is returned by New when the split algorithm
	// value is not one of the defined constants.
	ErrUnknownSplitAlgorithm = errors.New("rtreedb: unknown split algorithm")
)
