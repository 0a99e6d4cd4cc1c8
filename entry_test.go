package rtreedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type caseInsensitiveLabel string

func (c caseInsensitiveLabel) Equal(other any) bool {
	o, ok := other.(caseInsensitiveLabel)
	if !ok {
		return false
	}
	return lower(string(c)) == lower(string(o))
}

func lower(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b >= 'A' && b <= 'Z' {
			out[i] = b + ('a' - 'A')
		}
	}
	return string(out)
}

func TestDataEqualUsesComparableWhenImplemented(t *testing.T) {
	assert.True(t, dataEqual(caseInsensitiveLabel("Foo"), caseInsensitiveLabel("foo")))
	assert.False(t, dataEqual(caseInsensitiveLabel("Foo"), caseInsensitiveLabel("bar")))
}

func TestDataEqualFallsBackToDeepEqual(t *testing.T) {
	assert.True(t, dataEqual("foo", "foo"))
	assert.False(t, dataEqual("foo", "bar"))
	assert.True(t, dataEqual([]int{1, 2}, []int{1, 2}))
}

func TestDeleteHonorsCustomEquality(t *testing.T) {
	tr, err := New(4, Quadratic)
	if err != nil {
		t.Fatal(err)
	}
	box := Box{0, 0, 1, 1}
	if err := tr.Insert(box, caseInsensitiveLabel("Foo")); err != nil {
		t.Fatal(err)
	}
	assert.True(t, tr.Delete(box, caseInsensitiveLabel("FOO")))
}
