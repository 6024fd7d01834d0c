package gui

// OnMouseMove routes a pointer move at x, y in surface coordinates. Hover
// changes are reported leave first, then the move goes to the capturing
// element or else to the element under the pointer, in its own coordinates.
func (c *Context) OnMouseMove(s SurfaceID, x, y float64) {
	c.surf(s)
	c.BeginBatch()
	defer c.EndBatch()

	hit := c.HitTest(s, x, y)
	if old := c.surfaces[s].hover; old != hit {
		c.surfaces[s].hover = hit
		if old != NoElement && c.IsElement(old) {
			c.handler.OnMouseLeave(old)
		}
		if hit != NoElement && c.IsElement(hit) {
			c.handler.OnMouseEnter(hit)
		}
	}

	target := c.surfaces[s].capture
	if target == NoElement {
		target = hit
	}
	if target == NoElement || !c.IsElement(target) {
		return
	}
	abs := c.elements[target].layout.abs
	c.handler.OnMouseMove(target, x-abs[0], y-abs[1])
}

// Hovered returns the element last found under the pointer on s.
func (c *Context) Hovered(s SurfaceID) ElementID {
	return c.surf(s).hover
}

// SetMouseCapture routes every following move on id's surface to id.
func (c *Context) SetMouseCapture(id ElementID) bool {
	e := c.el(id)
	if e.surface == NoSurface {
		return false
	}
	c.surfaces[e.surface].capture = id
	return true
}

// ReleaseMouseCapture clears the capturing element of s.
func (c *Context) ReleaseMouseCapture(s SurfaceID) {
	c.surf(s).capture = NoElement
}

// MouseCapture returns the capturing element of s, or NoElement.
func (c *Context) MouseCapture(s SurfaceID) ElementID {
	return c.surf(s).capture
}
