package gui

import "gogui/rect"

// markChanged records a genuine geometry change of id. The first change in
// a pass captures the rectangle to repaint.
func (c *Context) markChanged(id ElementID, f changeFlags) {
	e := &c.elements[id]
	if e.layout.changes == 0 {
		e.layout.prevRect = c.elementRect(id)
		c.changed = append(c.changed, id)
	}
	e.layout.changes |= f
}

type changeEvent struct {
	id      ElementID
	changes changeFlags
	surface SurfaceID
	prev    rect.Rect
	bounds  rect.Rect
}

// notifyChanges flushes pending repaints and change events. Events are
// snapshotted first: a handler may delete the elements they describe.
func (c *Context) notifyChanges() {
	for _, id := range c.repaint {
		if c.elements[id].alive {
			c.invalidateSubtreeRects(id)
		}
	}
	c.repaint = c.repaint[:0]

	if len(c.changed) == 0 {
		return
	}
	events := make([]changeEvent, 0, len(c.changed))
	for _, id := range c.changed {
		e := &c.elements[id]
		if !e.alive || e.layout.changes == 0 {
			continue
		}
		events = append(events, changeEvent{
			id:      id,
			changes: e.layout.changes,
			surface: e.surface,
			prev:    e.layout.prevRect,
			bounds:  c.elementRect(id),
		})
		e.layout.changes = 0
	}
	c.changed = c.changed[:0]

	for _, ev := range events {
		c.invalidateRect(ev.surface, ev.prev)
		c.invalidateRect(ev.surface, ev.bounds)
	}
	for _, ev := range events {
		b := ev.bounds
		switch ev.changes {
		case sizeChanged | positionChanged:
			c.handler.OnSizeAndMove(ev.id, b.Left, b.Top, b.Width(), b.Height())
		case sizeChanged:
			c.handler.OnSize(ev.id, b.Width(), b.Height())
		case positionChanged:
			c.handler.OnMove(ev.id, b.Left, b.Top)
		}
	}
}

func (c *Context) scheduleRepaint(id ElementID) {
	c.repaint = append(c.repaint, id)
}

// elementRect is the border box of id in surface coordinates.
func (c *Context) elementRect(id ElementID) rect.Rect {
	l := &c.elements[id].layout
	return rect.NewRectSize(l.abs[0], l.abs[1], l.size[0], l.size[1])
}

func (c *Context) invalidateSubtreeRects(id ElementID) {
	for d := range c.subtree(id) {
		c.invalidateRect(c.elements[d].surface, c.elementRect(d))
	}
}

// invalidateRect grows the dirty rectangle of s by r clipped to the surface.
func (c *Context) invalidateRect(s SurfaceID, r rect.Rect) {
	if s == NoSurface {
		return
	}
	sf := &c.surfaces[s]
	r = r.Intersect(sf.bounds())
	if r.IsEmpty() {
		return
	}
	sf.invalid = sf.invalid.Union(r)
}

// InvalidateRect requests a repaint of r on s.
func (c *Context) InvalidateRect(s SurfaceID, r rect.Rect) {
	c.surf(s)
	c.BeginBatch()
	defer c.EndBatch()
	c.invalidateRect(s, r)
}

// InvalidRect returns the pending dirty rectangle of s.
func (c *Context) InvalidRect(s SurfaceID) rect.Rect {
	return c.surf(s).invalid
}

// validatePaint hands every non-empty dirty rectangle to the handler.
func (c *Context) validatePaint() {
	type request struct {
		surface SurfaceID
		area    rect.Rect
	}
	var requests []request
	for i := 1; i < len(c.surfaces); i++ {
		sf := &c.surfaces[i]
		if !sf.alive || sf.invalid.IsEmpty() {
			continue
		}
		requests = append(requests, request{SurfaceID(i), sf.invalid})
		sf.invalid = rect.NewRectEmpty()
	}
	for _, r := range requests {
		c.handler.OnRepaint(r.surface, r.area)
	}
}
