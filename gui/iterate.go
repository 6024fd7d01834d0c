package gui

import "iter"

// The sequences below walk sibling links directly. Structural edits while
// ranging over them are not supported; collect handles first.

// Children yields the children of id in order.
func (c *Context) Children(id ElementID) iter.Seq[ElementID] {
	c.el(id)
	return func(yield func(ElementID) bool) {
		for ch := c.elements[id].firstChild; ch != NoElement; ch = c.elements[ch].next {
			if !yield(ch) {
				return
			}
		}
	}
}

// Siblings yields the other elements sharing id's parent, or id's surface
// when it is a root, in order.
func (c *Context) Siblings(id ElementID) iter.Seq[ElementID] {
	c.el(id)
	return func(yield func(ElementID) bool) {
		e := &c.elements[id]
		first, _ := c.listEnds(e.parent, e.surface)
		if first == nil {
			return
		}
		for sib := *first; sib != NoElement; sib = c.elements[sib].next {
			if sib != id && !yield(sib) {
				return
			}
		}
	}
}

// Ancestors yields the parent of id, then its parent, up to the root.
func (c *Context) Ancestors(id ElementID) iter.Seq[ElementID] {
	c.el(id)
	return func(yield func(ElementID) bool) {
		for p := c.elements[id].parent; p != NoElement; p = c.elements[p].parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Descendants yields the subtree below id in depth-first pre-order.
func (c *Context) Descendants(id ElementID) iter.Seq[ElementID] {
	c.el(id)
	return func(yield func(ElementID) bool) {
		for d := c.elements[id].firstChild; d != NoElement; d = c.nextInSubtree(d, id) {
			if !yield(d) {
				return
			}
		}
	}
}

// Roots yields the root elements of s in order.
func (c *Context) Roots(s SurfaceID) iter.Seq[ElementID] {
	c.surf(s)
	return func(yield func(ElementID) bool) {
		for r := c.surfaces[s].firstRoot; r != NoElement; r = c.elements[r].next {
			if !yield(r) {
				return
			}
		}
	}
}

// SurfaceElements yields every element on s, root by root in pre-order.
func (c *Context) SurfaceElements(s SurfaceID) iter.Seq[ElementID] {
	c.surf(s)
	return func(yield func(ElementID) bool) {
		for r := c.surfaces[s].firstRoot; r != NoElement; r = c.elements[r].next {
			for d := range c.subtree(r) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// subtree yields root and its descendants in pre-order.
func (c *Context) subtree(root ElementID) iter.Seq[ElementID] {
	return func(yield func(ElementID) bool) {
		for d := root; d != NoElement; d = c.nextInSubtree(d, root) {
			if !yield(d) {
				return
			}
		}
	}
}

// nextInSubtree returns the pre-order successor of cur without leaving the
// subtree of root.
func (c *Context) nextInSubtree(cur, root ElementID) ElementID {
	if fc := c.elements[cur].firstChild; fc != NoElement {
		return fc
	}
	for cur != root {
		if n := c.elements[cur].next; n != NoElement {
			return n
		}
		cur = c.elements[cur].parent
	}
	return NoElement
}

// IsChild reports whether child's parent is parent.
func (c *Context) IsChild(child, parent ElementID) bool {
	return c.el(child).parent == parent && parent != NoElement
}

func (c *Context) IsParent(parent, child ElementID) bool {
	return c.IsChild(child, parent)
}

// IsDescendant reports whether d lies strictly below ancestor.
func (c *Context) IsDescendant(d, ancestor ElementID) bool {
	for p := range c.Ancestors(d) {
		if p == ancestor {
			return true
		}
	}
	return false
}

func (c *Context) IsAncestor(ancestor, d ElementID) bool {
	return c.IsDescendant(d, ancestor)
}
