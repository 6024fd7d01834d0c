package gui

import "image/color"

// Every setter below runs in its own batch, so a lone call validates and
// repaints before returning. Wrap sequences in BeginBatch/EndBatch to
// validate once.

func (c *Context) setSize(id ElementID, a Axis, kind sizeKind, l Length) {
	e := c.el(id)
	p := e.style.sizeRef(a, kind)
	if *p == l {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	*p = l
	c.invalidate(id, sizeFlag(a))
	if e.parent != NoElement && c.elements[e.parent].style.flexChildren(a) {
		c.invalidateNeighborhood(e.parent)
	}
}

func (c *Context) SetWidth(id ElementID, l Length)     { c.setSize(id, AxisHorizontal, sizeDeclared, l) }
func (c *Context) SetHeight(id ElementID, l Length)    { c.setSize(id, AxisVertical, sizeDeclared, l) }
func (c *Context) SetMinWidth(id ElementID, l Length)  { c.setSize(id, AxisHorizontal, sizeMinimum, l) }
func (c *Context) SetMinHeight(id ElementID, l Length) { c.setSize(id, AxisVertical, sizeMinimum, l) }
func (c *Context) SetMaxWidth(id ElementID, l Length)  { c.setSize(id, AxisHorizontal, sizeMaximum, l) }
func (c *Context) SetMaxHeight(id ElementID, l Length) { c.setSize(id, AxisVertical, sizeMaximum, l) }

func (c *Context) SetSize(id ElementID, width, height Length) {
	c.BeginBatch()
	defer c.EndBatch()
	c.SetWidth(id, width)
	c.SetHeight(id, height)
}

// SetOffset sets the left, top, right or bottom offset used by relative and
// absolute positioning.
func (c *Context) SetOffset(id ElementID, edge Edge, l Length) {
	p := c.el(id).style.offsetRef(edge)
	if *p == l {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	*p = l
	c.invalidate(id, PositionInvalid)
}

func (c *Context) SetLeft(id ElementID, l Length)   { c.SetOffset(id, EdgeLeft, l) }
func (c *Context) SetTop(id ElementID, l Length)    { c.SetOffset(id, EdgeTop, l) }
func (c *Context) SetRight(id ElementID, l Length)  { c.SetOffset(id, EdgeRight, l) }
func (c *Context) SetBottom(id ElementID, l Length) { c.SetOffset(id, EdgeBottom, l) }

func (c *Context) SetPositioning(id ElementID, mode Positioning) {
	e := c.el(id)
	if e.style.Positioning == mode {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.Positioning = mode
	c.invalidate(id, SizeInvalid|PositionInvalid)
	c.invalidateNeighborhood(e.parent)
	c.queueAbsolute(id)
}

// SetEdgePriority selects which offset of each axis positions id.
func (c *Context) SetEdgePriority(id ElementID, horizontal, vertical EdgePriority) {
	e := c.el(id)
	if e.style.HorizontalPriority == horizontal && e.style.VerticalPriority == vertical {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.HorizontalPriority = horizontal
	e.style.VerticalPriority = vertical
	c.invalidate(id, PositionInvalid)
}

// SetPositionOrigin selects the parent box relative offsets start from.
func (c *Context) SetPositionOrigin(id ElementID, b Boundary) {
	e := c.el(id)
	if e.style.PositionOrigin == b {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.PositionOrigin = b
	c.invalidate(id, PositionInvalid)
}

type boxLayer uint8

const (
	layerMargin boxLayer = iota
	layerPadding
	layerBorder
)

func (s *Style) sides(layer boxLayer) *Sides {
	switch layer {
	case layerPadding:
		return &s.Padding
	case layerBorder:
		return &s.Border
	}
	return &s.Margin
}

var allEdges = []Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

func (c *Context) setEdges(id ElementID, layer boxLayer, l Length, which ...Edge) {
	sides := c.el(id).style.sides(layer)
	changed := false
	for _, edge := range which {
		if sides.get(edge) != l {
			sides.set(edge, l)
			changed = true
		}
	}
	if !changed {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	c.refreshEdges(id)
	if layer == layerMargin {
		c.invalidate(id, SizeInvalid|PositionInvalid)
		return
	}
	c.invalidate(id, SizeInvalid)
	c.invalidateChildBox(id)
	c.scheduleRepaint(id)
}

// invalidateChildBox marks the children of id after the box they are laid
// out in changed.
func (c *Context) invalidateChildBox(id ElementID) {
	for ch := c.elements[id].firstChild; ch != NoElement; ch = c.elements[ch].next {
		st := &c.elements[ch].style
		for _, a := range axes {
			if st.hasPercentSize(a) {
				c.invalidate(ch, sizeFlag(a))
			}
		}
		if st.Positioning != PositionAbsolute {
			c.invalidate(ch, PositionInvalid)
		}
	}
}

func (c *Context) SetMargin(id ElementID, edge Edge, l Length) {
	c.setEdges(id, layerMargin, l, edge)
}

func (c *Context) SetMargins(id ElementID, l Length) {
	c.setEdges(id, layerMargin, l, allEdges...)
}

func (c *Context) SetPadding(id ElementID, edge Edge, l Length) {
	c.setEdges(id, layerPadding, l, edge)
}

func (c *Context) SetPaddings(id ElementID, l Length) {
	c.setEdges(id, layerPadding, l, allEdges...)
}

// SetBorderWidth sets one border width. Borders take pixel or point
// lengths; percent and auto resolve to zero.
func (c *Context) SetBorderWidth(id ElementID, edge Edge, l Length) {
	c.setEdges(id, layerBorder, l, edge)
}

func (c *Context) SetBorderWidths(id ElementID, l Length) {
	c.setEdges(id, layerBorder, l, allEdges...)
}

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

func (c *Context) setColor(id ElementID, dst *color.RGBA, col color.Color) {
	rgba := toRGBA(col)
	if *dst == rgba {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	*dst = rgba
	c.scheduleRepaint(id)
}

func (c *Context) SetBackgroundColor(id ElementID, col color.Color) {
	c.setColor(id, &c.el(id).style.BackgroundColor, col)
}

func (c *Context) SetBorderColor(id ElementID, col color.Color) {
	c.setColor(id, &c.el(id).style.BorderColor, col)
}

func (c *Context) SetTextColor(id ElementID, col color.Color) {
	c.setColor(id, &c.el(id).style.TextColor, col)
}

// SetText replaces the text of id. Clearing it drops the text layout.
func (c *Context) SetText(id ElementID, text string) {
	e := c.el(id)
	if e.text == text {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.text = text
	c.invalidate(id, TextInvalid)
}

func (c *Context) Text(id ElementID) string {
	return c.el(id).text
}

// SetFont changes the font of id and re-acquires it from the provider.
func (c *Context) SetFont(id ElementID, desc FontDesc) {
	e := c.el(id)
	if e.style.Font == desc {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.Font = desc
	c.refreshFont(id)
}

// Font returns the font handle of id, nil without a provider.
func (c *Context) Font(id ElementID) Font {
	return c.el(id).font
}

// TextSize returns the measured extent of id's text.
func (c *Context) TextSize(id ElementID) (width, height float64) {
	l := &c.el(id).layout
	return l.textSize[0], l.textSize[1]
}

// SetAlign sets how the auto-positioned children of id are aligned.
func (c *Context) SetAlign(id ElementID, h HorizontalAlign, v VerticalAlign) {
	e := c.el(id)
	if e.style.HorizontalAlign == h && e.style.VerticalAlign == v {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.HorizontalAlign = h
	e.style.VerticalAlign = v
	c.invalidateChildBox(id)
}

func (c *Context) SetHorizontalAlign(id ElementID, h HorizontalAlign) {
	c.SetAlign(id, h, c.el(id).style.VerticalAlign)
}

func (c *Context) SetVerticalAlign(id ElementID, v VerticalAlign) {
	c.SetAlign(id, c.el(id).style.HorizontalAlign, v)
}

// SetChildAxis sets the direction auto-positioned children flow in.
func (c *Context) SetChildAxis(id ElementID, a Axis) {
	e := c.el(id)
	if e.style.ChildAxis == a {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.ChildAxis = a
	c.invalidate(id, SizeInvalid)
	c.invalidateNeighborhood(id)
}

// SetFlexChildren toggles flex distribution of percent-sized children.
func (c *Context) SetFlexChildren(id ElementID, width, height bool) {
	e := c.el(id)
	if e.style.FlexChildrenWidth == width && e.style.FlexChildrenHeight == height {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.FlexChildrenWidth = width
	e.style.FlexChildrenHeight = height
	c.invalidateChildBox(id)
}

// SetChildrenBoundary selects the box children's percent lengths refer to.
func (c *Context) SetChildrenBoundary(id ElementID, width, height Boundary) {
	e := c.el(id)
	if e.style.ChildrenWidthBoundary == width && e.style.ChildrenHeightBoundary == height {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.ChildrenWidthBoundary = width
	e.style.ChildrenHeightBoundary = height
	c.invalidateChildBox(id)
}

// SetClipping controls whether id is clipped by its parent.
func (c *Context) SetClipping(id ElementID, mode ClippingMode) {
	e := c.el(id)
	if e.style.Clipping == mode {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.Clipping = mode
	c.scheduleRepaint(id)
}

// SetClippingBoundary selects the box that clips the children of id.
func (c *Context) SetClippingBoundary(id ElementID, b Boundary) {
	e := c.el(id)
	if e.style.ClippingBoundary == b {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	e.style.ClippingBoundary = b
	c.scheduleRepaint(id)
}

// SetVisible shows or hides id. Hidden elements drop out of their parent's
// flow and are neither painted nor hit.
func (c *Context) SetVisible(id ElementID, visible bool) {
	e := c.el(id)
	if e.style.Visible == visible {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	if !visible {
		c.invalidateSubtreeRects(id)
	}
	e.style.Visible = visible
	c.invalidateNeighborhood(e.parent)
	c.invalidate(id, PositionInvalid)
	if visible {
		c.scheduleRepaint(id)
	}
}

// IsVisible reports whether id and all its ancestors are visible.
func (c *Context) IsVisible(id ElementID) bool {
	if !c.el(id).style.Visible {
		return false
	}
	for p := range c.Ancestors(id) {
		if !c.elements[p].style.Visible {
			return false
		}
	}
	return true
}
