package rtreedb

import "reflect"

// Comparable is an optional interface payload types can implement to
// control the value-equality delete() relies on to locate an entry
// (spec.md §9: "payload equality... must be exposed as a trait... not
// reference identity"). Types that do not implement it are compared with
// reflect.DeepEqual.
type Comparable interface {
	Equal(other any) bool
}

// dataEqual reports whether a and b are equal by the payload's own
// equality contract, falling back to reflect.DeepEqual.
func dataEqual(a, b any) bool {
	if ca, ok := a.(Comparable); ok {
		return ca.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
