package gui

import "gogui/rect"

type clipFrame struct {
	id   ElementID
	clip rect.Rect
}

// walkVisible visits the elements of s in paint order, clipped the way they
// are painted. visit receives the element's border box and the part of it
// that is visible.
func (c *Context) walkVisible(s SurfaceID, area rect.Rect, visit func(id ElementID, bounds, visible rect.Rect)) {
	var stack []clipFrame
	for r := c.surfaces[s].lastRoot; r != NoElement; r = c.elements[r].prev {
		stack = append(stack, clipFrame{r, area})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e := &c.elements[f.id]
		if !e.style.Visible {
			continue
		}
		base := f.clip
		if e.style.Clipping == ClipDisabled {
			base = area
		}
		bounds := c.elementRect(f.id)
		if visible := bounds.Intersect(base); !visible.IsEmpty() {
			visit(f.id, bounds, visible)
		}

		childClip := c.clipBox(f.id, bounds).Intersect(base)
		for ch := e.lastChild; ch != NoElement; ch = c.elements[ch].prev {
			if childClip.IsEmpty() && c.elements[ch].style.Clipping != ClipDisabled {
				continue
			}
			stack = append(stack, clipFrame{ch, childClip})
		}
	}
}

// clipBox pulls bounds in to the clipping boundary of id.
func (c *Context) clipBox(id ElementID, bounds rect.Rect) rect.Rect {
	e := &c.elements[id]
	var in edges
	switch e.style.ClippingBoundary {
	case BoundaryInnerBorder:
		in = e.layout.border
	case BoundaryInner:
		for i := range in {
			in[i] = e.layout.border[i] + e.layout.padding[i]
		}
	}
	return bounds.Inset(in[EdgeLeft], in[EdgeTop], in[EdgeRight], in[EdgeBottom])
}

// PaintSurface paints area of s on the context's renderer. token is passed
// through to the renderer untouched.
func (c *Context) PaintSurface(s SurfaceID, area rect.Rect, token any) {
	sf := c.surf(s)
	if c.renderer == nil {
		return
	}
	area = area.Intersect(sf.bounds())
	if area.IsEmpty() {
		return
	}
	c.tracer.Time("paint")
	defer c.tracer.Stop("paint")

	r := c.renderer
	r.BeginPaint(s, token)
	r.SetClip(area)
	r.ClearRect(area)
	c.walkVisible(s, area, c.paintElement)
	r.EndPaint(s, token)
}

func (c *Context) paintElement(id ElementID, bounds, visible rect.Rect) {
	r := c.renderer
	e := &c.elements[id]
	r.SetClip(visible)
	if e.style.BackgroundColor.A != 0 {
		r.FillRect(bounds, e.style.BackgroundColor)
	}

	if e.textLayout != nil && e.font != nil && r.SupportsText(e.font) {
		b, p := &e.layout.border, &e.layout.padding
		inner := bounds.Inset(b[EdgeLeft]+p[EdgeLeft], b[EdgeTop]+p[EdgeTop], b[EdgeRight]+p[EdgeRight], b[EdgeBottom]+p[EdgeBottom])
		if local := visible.Intersect(inner); !local.IsEmpty() {
			local = local.Translate(-inner.Left, -inner.Top)
			for run := range e.textLayout.Runs(local) {
				r.DrawText(run, inner.Left+run.X, inner.Top+run.Y, e.style.TextColor)
			}
		}
	}

	if e.style.BorderColor.A == 0 {
		return
	}
	b := &e.layout.border
	sides := [4]rect.Rect{
		rect.NewRect(bounds.Left, bounds.Top, bounds.Left+b[EdgeLeft], bounds.Bottom),
		rect.NewRect(bounds.Right-b[EdgeRight], bounds.Top, bounds.Right, bounds.Bottom),
		// top and bottom stop at the vertical borders
		rect.NewRect(bounds.Left+b[EdgeLeft], bounds.Top, bounds.Right-b[EdgeRight], bounds.Top+b[EdgeTop]),
		rect.NewRect(bounds.Left+b[EdgeLeft], bounds.Bottom-b[EdgeBottom], bounds.Right-b[EdgeRight], bounds.Bottom),
	}
	for _, side := range sides {
		if !side.IsEmpty() {
			r.FillRect(side, e.style.BorderColor)
		}
	}
}

// HitTest returns the topmost element of s painted at x, y.
func (c *Context) HitTest(s SurfaceID, x, y float64) ElementID {
	sf := c.surf(s)
	hit := NoElement
	c.walkVisible(s, sf.bounds(), func(id ElementID, _, visible rect.Rect) {
		if visible.ContainsPoint(x, y) {
			hit = id
		}
	})
	return hit
}
