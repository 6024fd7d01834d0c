package rect

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionGrowsOnly(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 20, 15)
	assert.Equal(t, NewRect(0, 0, 20, 15), a.Union(b))
	assert.Equal(t, a, a.Union(NewRectEmpty()))
	assert.Equal(t, b, NewRectEmpty().Union(b))
	assert.True(t, NewRectEmpty().Union(NewRectEmpty()).IsEmpty())
}

func TestIntersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	assert.Equal(t, NewRect(5, 5, 10, 10), a.Intersect(NewRect(5, 5, 20, 20)))
	assert.True(t, a.Intersect(NewRect(10, 0, 20, 10)).IsEmpty(), "touching edges do not overlap")
	assert.False(t, a.Intersects(NewRect(10, 0, 20, 10)))
}

func TestInsetCollapses(t *testing.T) {
	r := NewRectSize(10, 10, 20, 10).Inset(2, 3, 4, 5)
	assert.Equal(t, NewRect(12, 13, 26, 15), r)

	collapsed := NewRectSize(0, 0, 4, 4).Inset(3, 3, 3, 3)
	assert.True(t, collapsed.IsEmpty())
	assert.Equal(t, 0.0, collapsed.Width())
}

func TestContainsPointExclusiveEdges(t *testing.T) {
	r := NewRectSize(0, 0, 10, 10)
	assert.True(t, r.ContainsPoint(0, 0))
	assert.True(t, r.ContainsPoint(9.5, 9.5))
	assert.False(t, r.ContainsPoint(10, 5))
	assert.False(t, r.ContainsPoint(5, 10))
}

func TestRoundOutToInt(t *testing.T) {
	r := NewRect(0.5, 1.2, 10.1, 20.9)
	assert.Equal(t, image.Rect(0, 1, 11, 21), r.RoundOutToInt())
	assert.Equal(t, NewRect(1, 2, 11, 22), NewRect(0, 0, 10, 20).Translate(1, 2))
}
