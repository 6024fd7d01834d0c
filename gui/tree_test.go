package gui

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(seq iter.Seq[ElementID]) []ElementID {
	return slices.Collect(seq)
}

func TestChildOrdering(t *testing.T) {
	f := newFixture(t)
	c := f.c
	parent := f.root(t)
	a := f.child(t, parent)
	b := f.child(t, parent)
	first := c.CreateElement()
	require.True(t, c.PrependChild(parent, first))
	mid := c.CreateElement()
	require.True(t, c.InsertAfter(a, mid))
	before := c.CreateElement()
	require.True(t, c.InsertBefore(b, before))

	assert.Equal(t, []ElementID{first, a, mid, before, b}, collect(c.Children(parent)))
	assert.Equal(t, []ElementID{first, a, before, b}, collect(c.Siblings(mid)))
	assert.Equal(t, f.surface, c.ElementSurface(mid))
	assert.True(t, c.IsChild(mid, parent))
	assert.True(t, c.IsParent(parent, mid))

	require.True(t, c.InsertAfter(mid, a))
	assert.Equal(t, []ElementID{first, mid, a, before, b}, collect(c.Children(parent)))
}

func TestStructuralPreconditions(t *testing.T) {
	f := newFixture(t)
	c := f.c
	root := f.root(t)
	kid := f.child(t, root)
	grandkid := f.child(t, kid)
	loose := c.CreateElement()

	assert.False(t, c.AttachToSurface(kid, f.surface), "a child cannot become a root")
	assert.False(t, c.DetachFromSurface(kid))
	assert.False(t, c.AppendChild(grandkid, root), "no cycles")
	assert.False(t, c.AppendChild(kid, kid))
	assert.False(t, c.InsertBefore(loose, kid), "detached siblings have no list")
	assert.False(t, c.Detach(loose))

	assert.Equal(t, root, c.Parent(kid))
	assert.Equal(t, []ElementID{grandkid}, collect(c.Children(kid)))
	assert.Equal(t, []ElementID{root}, collect(c.Roots(f.surface)))
}

func TestReparentAcrossSurfaces(t *testing.T) {
	f := newFixture(t)
	c := f.c
	other := c.CreateSurface(100, 100)
	root := f.root(t)
	kid := f.child(t, root)
	grandkid := f.child(t, kid)

	target := c.CreateElement()
	require.True(t, c.AttachToSurface(target, other))
	require.True(t, c.AppendChild(target, kid))

	assert.Equal(t, other, c.ElementSurface(kid))
	assert.Equal(t, other, c.ElementSurface(grandkid))
	assert.Empty(t, collect(c.Children(root)))
	assert.Equal(t, []ElementID{target, kid, grandkid}, collect(c.SurfaceElements(other)))

	require.True(t, c.Detach(kid))
	assert.Equal(t, NoSurface, c.ElementSurface(grandkid))
}

func TestDeleteIsRecursive(t *testing.T) {
	f := newFixture(t)
	c := f.c
	root := f.root(t)
	kid := f.child(t, root)
	grandkid := f.child(t, kid)
	sibling := f.child(t, root)

	c.BeginBatch()
	c.SetWidth(grandkid, Px(10))
	c.DeleteElement(kid)
	assertWorklistConsistent(t, c)
	c.EndBatch()

	assert.False(t, c.IsElement(kid))
	assert.False(t, c.IsElement(grandkid))
	assert.Equal(t, []ElementID{sibling}, collect(c.Children(root)))
	assertWorklistConsistent(t, c)

	// Released handles are recycled.
	again := c.CreateElement()
	assert.Contains(t, []ElementID{kid, grandkid}, again)
	assert.Panics(t, func() { c.Width(kid + grandkid + 100) })
}

func TestDeleteSurfaceDetachesRoots(t *testing.T) {
	f := newFixture(t)
	c := f.c
	a := f.root(t)
	b := f.root(t)
	kid := f.child(t, a)

	c.DeleteSurface(f.surface)

	for _, id := range []ElementID{a, b, kid} {
		assert.True(t, c.IsElement(id))
		assert.Equal(t, NoSurface, c.ElementSurface(id))
	}
	assert.Equal(t, a, c.Parent(kid))
	assert.False(t, c.IsSurface(f.surface))
}

func TestIteration(t *testing.T) {
	f := newFixture(t)
	c := f.c
	root := f.root(t)
	a := f.child(t, root)
	a1 := f.child(t, a)
	a2 := f.child(t, a)
	b := f.child(t, root)
	b1 := f.child(t, b)

	assert.Equal(t, []ElementID{a, a1, a2, b, b1}, collect(c.Descendants(root)))
	assert.Equal(t, []ElementID{a1, a2}, collect(c.Descendants(a)))
	assert.Equal(t, []ElementID{b, root}, collect(c.Ancestors(b1)))
	assert.Equal(t, []ElementID{root, a, a1, a2, b, b1}, collect(c.SurfaceElements(f.surface)))

	var seen []ElementID
	for d := range c.Descendants(root) {
		seen = append(seen, d)
		if d == a2 {
			break
		}
	}
	assert.Equal(t, []ElementID{a, a1, a2}, seen)

	assert.True(t, c.IsDescendant(b1, root))
	assert.True(t, c.IsAncestor(root, a2))
	assert.False(t, c.IsDescendant(root, b1))
	assert.False(t, c.IsDescendant(a1, b))
}

func TestInvalidHandlesPanic(t *testing.T) {
	c := New()
	assert.Panics(t, func() { c.SetWidth(NoElement, Px(1)) })
	assert.Panics(t, func() { c.SurfaceSize(NoSurface) })
	assert.Panics(t, func() { c.CreateElement(); c.DeleteElement(99) })
}
