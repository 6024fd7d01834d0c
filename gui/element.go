package gui

import "gogui/rect"

// edges holds resolved pixel widths indexed by Edge.
type edges [4]float64

func (e *edges) start(a Axis) float64 { return e[a] }
func (e *edges) end(a Axis) float64   { return e[a+2] }
func (e *edges) sum(a Axis) float64   { return e[a] + e[a+2] }

func (e edges) insets() Insets {
	return Insets{Left: e[EdgeLeft], Top: e[EdgeTop], Right: e[EdgeRight], Bottom: e[EdgeBottom]}
}

type changeFlags uint8

const (
	sizeChanged changeFlags = 1 << iota
	positionChanged
)

// layoutState is the derived geometry of an element.
type layoutState struct {
	size      [2]float64 // clamped border-box size
	unclamped [2]float64
	outer     [2]float64 // size plus margins
	border    edges
	padding   edges
	margin    edges
	rel       [2]float64
	abs       [2]float64
	textSize  [2]float64

	flags     LayoutFlags
	changes   changeFlags
	prevRect  rect.Rect
	absQueued bool
}

// boxSize returns the extent of box b on axis a.
func (l *layoutState) boxSize(a Axis, b Boundary) float64 {
	return max(l.size[a]-l.boxInset(a, b, false)-l.boxInset(a, b, true), 0)
}

// boxInset returns the distance from the border-box edge to the edge of box
// b, on the near side of axis a or the far side when far is set.
func (l *layoutState) boxInset(a Axis, b Boundary, far bool) float64 {
	side := l.border.start
	pad := l.padding.start
	if far {
		side = l.border.end
		pad = l.padding.end
	}
	switch b {
	case BoundaryInnerBorder:
		return side(a)
	case BoundaryInner:
		return side(a) + pad(a)
	}
	return 0
}

type element struct {
	alive bool

	parent     ElementID
	firstChild ElementID
	lastChild  ElementID
	prev, next ElementID
	surface    SurfaceID

	style  Style
	layout layoutState

	text       string
	textLayout TextLayout
	font       Font
}

// CreateElement returns a detached element with the default style.
func (c *Context) CreateElement() ElementID {
	var id ElementID
	if n := len(c.freeList); n > 0 {
		id = c.freeList[n-1]
		c.freeList = c.freeList[:n-1]
	} else {
		c.elements = append(c.elements, element{})
		id = ElementID(len(c.elements) - 1)
		c.invalid.grow(len(c.elements))
	}
	c.elements[id] = element{alive: true, style: DefaultStyle()}

	c.BeginBatch()
	defer c.EndBatch()
	c.refreshEdges(id)
	c.refreshFont(id)
	c.invalidate(id, SizeInvalid|PositionInvalid)
	return id
}

// DeleteElement deletes id and its whole subtree, children first.
func (c *Context) DeleteElement(id ElementID) {
	e := c.el(id)
	c.BeginBatch()
	defer c.EndBatch()

	parent := e.parent
	c.invalidateSubtreeRects(id)
	c.unlink(id)
	c.invalidateNeighborhood(parent)

	var doomed []ElementID
	for d := range c.subtree(id) {
		doomed = append(doomed, d)
	}
	for i := len(doomed) - 1; i >= 0; i-- {
		c.destroy(doomed[i])
	}
}

func (c *Context) destroy(id ElementID) {
	e := &c.elements[id]
	c.invalid.remove(id)
	if e.surface != NoSurface {
		c.forgetPointer(e.surface, id)
	}
	c.elements[id] = element{}
	// Handles are recycled once validation is over so that no pending
	// change or absolute-position entry can alias a new element.
	c.pendingFree = append(c.pendingFree, id)
}

func (c *Context) releaseElements() {
	c.freeList = append(c.freeList, c.pendingFree...)
	c.pendingFree = c.pendingFree[:0]
}

// forgetPointer drops hover and capture references to id on s.
func (c *Context) forgetPointer(s SurfaceID, id ElementID) {
	sf := &c.surfaces[s]
	if sf.hover == id {
		sf.hover = NoElement
	}
	if sf.capture == id {
		sf.capture = NoElement
	}
}

// listEnds returns the head and tail slots of the sibling list id would
// live in under parent or as a root of s. Both are nil for a detached
// element.
func (c *Context) listEnds(parent ElementID, s SurfaceID) (first, last *ElementID) {
	if parent != NoElement {
		p := &c.elements[parent]
		return &p.firstChild, &p.lastChild
	}
	if s != NoSurface {
		sf := &c.surfaces[s]
		return &sf.firstRoot, &sf.lastRoot
	}
	return nil, nil
}

func (c *Context) unlink(id ElementID) {
	e := &c.elements[id]
	first, last := c.listEnds(e.parent, e.surface)
	if first == nil {
		return
	}
	if e.prev != NoElement {
		c.elements[e.prev].next = e.next
	} else {
		*first = e.next
	}
	if e.next != NoElement {
		c.elements[e.next].prev = e.prev
	} else {
		*last = e.prev
	}
	e.prev, e.next = NoElement, NoElement
	e.parent = NoElement
}

// link inserts id before the sibling before, or at the end when before is
// NoElement. Surface membership is left to the caller.
func (c *Context) link(id, parent ElementID, s SurfaceID, before ElementID) {
	e := &c.elements[id]
	e.parent = parent
	first, last := c.listEnds(parent, s)
	if first == nil {
		return
	}
	if before == NoElement {
		e.prev = *last
		e.next = NoElement
		if *last != NoElement {
			c.elements[*last].next = id
		} else {
			*first = id
		}
		*last = id
		return
	}
	b := &c.elements[before]
	e.prev = b.prev
	e.next = before
	if b.prev != NoElement {
		c.elements[b.prev].next = id
	} else {
		*first = id
	}
	b.prev = id
}

// move relocates id with its subtree. Callers hold a batch.
func (c *Context) move(id, parent ElementID, s SurfaceID, before ElementID) {
	e := &c.elements[id]
	oldParent, oldSurface := e.parent, e.surface

	c.invalidateSubtreeRects(id)
	c.unlink(id)
	c.invalidateNeighborhood(oldParent)
	c.link(id, parent, s, before)
	c.invalidateNeighborhood(parent)

	if s != oldSurface {
		for d := range c.subtree(id) {
			c.elements[d].surface = s
			if oldSurface != NoSurface {
				c.forgetPointer(oldSurface, d)
			}
			c.refreshEdges(d)
			c.refreshFont(d)
			c.invalidate(d, AllInvalid)
		}
	}
	c.invalidate(id, SizeInvalid|PositionInvalid)
	c.queueAbsolute(id)
	c.scheduleRepaint(id)
}

// place validates a structural edit and applies it.
func (c *Context) place(id, parent ElementID, s SurfaceID, before ElementID) bool {
	if parent != NoElement && (parent == id || c.IsAncestor(id, parent)) {
		return false
	}
	if before == id {
		before = c.elements[id].next
	}
	c.BeginBatch()
	defer c.EndBatch()
	c.move(id, parent, s, before)
	return true
}

// AttachToSurface makes the parentless element id the last root of s. It
// fails when id has a parent.
func (c *Context) AttachToSurface(id ElementID, s SurfaceID) bool {
	e := c.el(id)
	c.surf(s)
	if e.parent != NoElement {
		return false
	}
	return c.place(id, NoElement, s, NoElement)
}

// DetachFromSurface removes the root id from its surface. It fails when id
// is not a root.
func (c *Context) DetachFromSurface(id ElementID) bool {
	e := c.el(id)
	if e.parent != NoElement || e.surface == NoSurface {
		return false
	}
	return c.place(id, NoElement, NoSurface, NoElement)
}

// ElementSurface returns the surface id is shown on, or NoSurface.
func (c *Context) ElementSurface(id ElementID) SurfaceID {
	return c.el(id).surface
}

func (c *Context) Parent(id ElementID) ElementID {
	return c.el(id).parent
}

// AppendChild makes child the last child of parent.
func (c *Context) AppendChild(parent, child ElementID) bool {
	p := c.el(parent)
	c.el(child)
	return c.place(child, parent, p.surface, NoElement)
}

// PrependChild makes child the first child of parent.
func (c *Context) PrependChild(parent, child ElementID) bool {
	p := c.el(parent)
	c.el(child)
	return c.place(child, parent, p.surface, p.firstChild)
}

// InsertBefore places id directly before sibling, under sibling's parent or
// among its surface's roots.
func (c *Context) InsertBefore(sibling, id ElementID) bool {
	s := c.el(sibling)
	c.el(id)
	if sibling == id || (s.parent == NoElement && s.surface == NoSurface) {
		return false
	}
	return c.place(id, s.parent, s.surface, sibling)
}

// InsertAfter places id directly after sibling.
func (c *Context) InsertAfter(sibling, id ElementID) bool {
	s := c.el(sibling)
	c.el(id)
	if sibling == id || (s.parent == NoElement && s.surface == NoSurface) {
		return false
	}
	return c.place(id, s.parent, s.surface, s.next)
}

// Detach removes id from its parent or surface. The element stays alive.
func (c *Context) Detach(id ElementID) bool {
	e := c.el(id)
	if e.parent == NoElement && e.surface == NoSurface {
		return false
	}
	return c.place(id, NoElement, NoSurface, NoElement)
}

// invalidateNeighborhood marks what depends on the membership of parent's
// child list. Roots are positioned independently of each other.
func (c *Context) invalidateNeighborhood(parent ElementID) {
	if parent == NoElement {
		return
	}
	pe := &c.elements[parent]
	for _, a := range axes {
		if pe.style.size(a).IsAuto() {
			c.invalidate(parent, sizeFlag(a))
		}
	}
	for sib := pe.firstChild; sib != NoElement; sib = c.elements[sib].next {
		se := &c.elements[sib]
		if !se.style.autoPositioned() {
			continue
		}
		c.invalidate(sib, PositionInvalid)
		for _, a := range axes {
			if pe.style.flexChildren(a) && se.style.size(a).IsPercent() {
				c.invalidate(sib, sizeFlag(a))
			}
		}
	}
}
