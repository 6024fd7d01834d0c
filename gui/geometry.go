package gui

import "gogui/rect"

// Geometry getters report the state of the last validation.

func (c *Context) Width(id ElementID) float64  { return c.el(id).layout.size[AxisHorizontal] }
func (c *Context) Height(id ElementID) float64 { return c.el(id).layout.size[AxisVertical] }

// UnclampedSize returns the size of id before min and max were applied.
func (c *Context) UnclampedSize(id ElementID) (width, height float64) {
	l := &c.el(id).layout
	return l.unclamped[0], l.unclamped[1]
}

// OuterSize returns the size of id including its margins.
func (c *Context) OuterSize(id ElementID) (width, height float64) {
	l := &c.el(id).layout
	return l.outer[0], l.outer[1]
}

// RelativePosition returns the border-box origin of id relative to its
// parent's border box, or to the surface for roots and absolute elements.
func (c *Context) RelativePosition(id ElementID) (x, y float64) {
	l := &c.el(id).layout
	return l.rel[0], l.rel[1]
}

// AbsolutePosition returns the border-box origin of id on its surface.
func (c *Context) AbsolutePosition(id ElementID) (x, y float64) {
	l := &c.el(id).layout
	return l.abs[0], l.abs[1]
}

// Rect returns the border box of id in surface coordinates.
func (c *Context) Rect(id ElementID) rect.Rect {
	c.el(id)
	return c.elementRect(id)
}

// InnerRect returns the box of id inside border and padding.
func (c *Context) InnerRect(id ElementID) rect.Rect {
	e := c.el(id)
	b, p := &e.layout.border, &e.layout.padding
	return c.elementRect(id).Inset(
		b[EdgeLeft]+p[EdgeLeft], b[EdgeTop]+p[EdgeTop],
		b[EdgeRight]+p[EdgeRight], b[EdgeBottom]+p[EdgeBottom])
}

func (c *Context) Border(id ElementID) Insets  { return c.el(id).layout.border.insets() }
func (c *Context) Padding(id ElementID) Insets { return c.el(id).layout.padding.insets() }
func (c *Context) Margin(id ElementID) Insets  { return c.el(id).layout.margin.insets() }

// Style returns a copy of the declared style of id.
func (c *Context) Style(id ElementID) Style {
	return c.el(id).style
}
