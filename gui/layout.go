package gui

import "math"

// invalidate sets flags on id, queueing it when it was clean.
func (c *Context) invalidate(id ElementID, f LayoutFlags) {
	if f == 0 {
		return
	}
	e := &c.elements[id]
	if e.layout.flags == 0 {
		c.invalid.push(id)
	}
	e.layout.flags |= f
}

// validated clears flags on id, dequeueing it once it is clean.
func (c *Context) validated(id ElementID, f LayoutFlags) {
	e := &c.elements[id]
	e.layout.flags &^= f
	if e.layout.flags == 0 {
		c.invalid.remove(id)
	}
}

// LayoutFlags returns the pending validation work of id.
func (c *Context) LayoutFlags(id ElementID) LayoutFlags {
	return c.el(id).layout.flags
}

// validateLayout drains the worklist. The head is re-read every step since
// validating one element routinely queues others.
func (c *Context) validateLayout() {
	limit := 64 * len(c.elements)
	for steps := 0; ; steps++ {
		id := c.invalid.front()
		if id == NoElement {
			break
		}
		if steps > limit {
			c.log.Warn("layout worklist did not drain", "steps", steps, "pending", c.invalid.len())
			break
		}
		c.validateElement(id)
	}
	c.validateAbsolutePositions()
}

func (c *Context) validateElement(id ElementID) {
	for _, a := range axes {
		if c.elements[id].layout.flags&sizeFlag(a) != 0 {
			c.validateSize(id, a)
		}
	}
	if c.elements[id].layout.flags&PositionInvalid != 0 {
		c.validatePosition(id)
	}
	if c.elements[id].layout.flags&TextInvalid != 0 {
		c.validateText(id)
	}
}

func (c *Context) dpi(s SurfaceID) [2]float64 {
	if s == NoSurface {
		return c.baseDPI
	}
	return c.surfaces[s].dpi
}

// pointScale converts points on axis a to pixels of surface s.
func (c *Context) pointScale(s SurfaceID, a Axis) float64 {
	return c.dpi(s)[a] / c.baseDPI[a]
}

// resolve converts l to pixels. Auto resolves to zero; callers that give
// auto a meaning check for it first.
func (c *Context) resolve(s SurfaceID, l Length, a Axis, ref float64) float64 {
	switch l.Unit {
	case UnitPixels:
		return l.Value
	case UnitPoints:
		return l.Value * c.pointScale(s, a)
	case UnitPercent:
		return l.Value / 100 * ref
	}
	return 0
}

// referenceSize is what percent lengths of id resolve against on axis a:
// the parent's children box, or the surface for a root.
func (c *Context) referenceSize(id ElementID, a Axis) float64 {
	e := &c.elements[id]
	if e.parent == NoElement {
		if e.surface == NoSurface {
			return 0
		}
		return c.surfaces[e.surface].size(a)
	}
	p := &c.elements[e.parent]
	return p.layout.boxSize(a, p.style.childrenBoundary(a))
}

// refreshEdges re-resolves border, padding and margin widths. Percent and
// auto edges resolve to zero.
func (c *Context) refreshEdges(id ElementID) {
	e := &c.elements[id]
	for i := range 4 {
		edge := Edge(i)
		a := Axis(i % 2)
		e.layout.border[i] = c.resolve(e.surface, edgeLength(e.style.Border.get(edge)), a, 0)
		e.layout.padding[i] = c.resolve(e.surface, edgeLength(e.style.Padding.get(edge)), a, 0)
		e.layout.margin[i] = c.resolve(e.surface, edgeLength(e.style.Margin.get(edge)), a, 0)
	}
}

func edgeLength(l Length) Length {
	if l.Unit == UnitPercent {
		return Length{Unit: UnitAuto}
	}
	return l
}

// fontDPI is the DPI fonts on s are acquired at. It follows the surface to
// base DPI ratio, like point lengths, and equals the surface DPI while the
// base DPI is DefaultDPI.
func (c *Context) fontDPI(s SurfaceID) (x, y float64) {
	return c.pointScale(s, AxisHorizontal) * DefaultDPI, c.pointScale(s, AxisVertical) * DefaultDPI
}

// refreshFont re-acquires the font of id for its surface DPI.
func (c *Context) refreshFont(id ElementID) {
	if c.fonts == nil {
		return
	}
	e := &c.elements[id]
	x, y := c.fontDPI(e.surface)
	e.font = c.fonts.AcquireFont(e.style.Font, x, y)
	if e.text != "" {
		c.invalidate(id, TextInvalid)
	}
}

func (c *Context) validateSize(id ElementID, a Axis) {
	ref := c.referenceSize(id, a)
	declared := c.declaredSize(id, a, ref)

	e := &c.elements[id]
	lo, hi := 0., math.Inf(1)
	if l := e.style.minSize(a); !l.IsAuto() {
		lo = c.resolve(e.surface, l, a, ref)
	}
	if l := e.style.maxSize(a); !l.IsAuto() {
		hi = c.resolve(e.surface, l, a, ref)
	}
	size := max(lo, min(declared, hi), 0)

	e.layout.unclamped[a] = declared
	resized := size != e.layout.size[a]
	if resized {
		c.markChanged(id, sizeChanged)
		e.layout.size[a] = size
	}
	outer := size + e.layout.margin.sum(a)
	reflowed := outer != e.layout.outer[a]
	e.layout.outer[a] = outer
	c.validated(id, sizeFlag(a))

	if resized {
		c.resizeCascade(id, a)
	}
	if reflowed {
		c.outerCascade(id, a)
	}
}

func (c *Context) declaredSize(id ElementID, a Axis, ref float64) float64 {
	e := &c.elements[id]
	l := e.style.size(a)
	switch l.Unit {
	case UnitAuto:
		return c.autoSize(id, a)
	case UnitPercent:
		if ratio, avail, ok := c.flexShare(id, a); ok {
			return ratio * avail
		}
	}
	return c.resolve(e.surface, l, a, ref)
}

// flexShare reports whether the percent size of id on axis a is a share of
// its parent's free space, and if so the share and the space.
func (c *Context) flexShare(id ElementID, a Axis) (ratio, avail float64, ok bool) {
	e := &c.elements[id]
	if e.parent == NoElement || !e.style.autoPositioned() {
		return 0, 0, false
	}
	p := e.parent
	pe := &c.elements[p]
	if !pe.style.flexChildren(a) {
		return 0, 0, false
	}
	ref := pe.layout.boxSize(a, pe.style.childrenBoundary(a))
	if pe.style.ChildAxis != a {
		return 1, max(ref-e.layout.margin.sum(a), 0), true
	}

	avail = ref
	total := 0.
	for sib := pe.firstChild; sib != NoElement; sib = c.elements[sib].next {
		se := &c.elements[sib]
		if !se.style.autoPositioned() || !se.style.Visible {
			continue
		}
		avail -= se.layout.margin.sum(a)
		if l := se.style.size(a); l.IsPercent() {
			total += l.Value
			continue
		}
		if se.layout.flags&sizeFlag(a) != 0 {
			c.validateSize(sib, a)
		}
		avail -= c.elements[sib].layout.size[a]
	}
	if total <= 0 {
		return 0, 0, true
	}
	return c.elements[id].style.size(a).Value / total, max(avail, 0), true
}

// autoSize sizes id to its auto-positioned children, or to its text when it
// has none.
func (c *Context) autoSize(id ElementID, a Axis) float64 {
	content, found := c.childrenExtent(id, a)
	e := &c.elements[id]
	if !found && e.text != "" {
		if e.layout.flags&TextInvalid != 0 {
			c.validateText(id)
		}
		content = e.layout.textSize[a]
	}
	return e.layout.border.sum(a) + e.layout.padding.sum(a) + content
}

// childrenExtent sums the outer sizes of the auto-positioned children of id
// along its child axis and takes their maximum across it.
func (c *Context) childrenExtent(id ElementID, a Axis) (extent float64, found bool) {
	along := c.elements[id].style.ChildAxis == a
	for ch := c.elements[id].firstChild; ch != NoElement; ch = c.elements[ch].next {
		if st := &c.elements[ch].style; !st.autoPositioned() || !st.Visible {
			continue
		}
		if c.elements[ch].layout.flags&sizeFlag(a) != 0 {
			c.validateSize(ch, a)
		}
		ce := &c.elements[ch]
		size := ce.layout.size[a]
		if ce.style.size(a).IsAuto() && (ce.style.minSize(a).IsPercent() || ce.style.maxSize(a).IsPercent()) {
			size = ce.layout.unclamped[a]
		}
		outer := size + ce.layout.margin.sum(a)
		if along {
			extent += outer
		} else {
			extent = max(extent, outer)
		}
		found = true
	}
	return extent, found
}

// resizeCascade invalidates what depends on the size of id on axis a.
func (c *Context) resizeCascade(id ElementID, a Axis) {
	for ch := c.elements[id].firstChild; ch != NoElement; ch = c.elements[ch].next {
		if c.elements[ch].style.hasPercentSize(a) {
			c.invalidate(ch, sizeFlag(a))
		}
		if c.placedAgainstParent(ch, a) {
			c.invalidate(ch, PositionInvalid)
		}
	}
	if c.placedAgainstSelf(id, a) {
		c.invalidate(id, PositionInvalid)
	}
}

// placedAgainstParent reports whether the position of id on axis a moves
// when its parent is resized.
func (c *Context) placedAgainstParent(id ElementID, a Axis) bool {
	e := &c.elements[id]
	switch e.style.Positioning {
	case PositionAuto:
		return c.elements[e.parent].style.align(a) != alignStart
	case PositionRelative:
		return e.style.priority(a) == PriorityEnd || e.style.near(a).IsPercent()
	}
	return false
}

// placedAgainstSelf reports whether the position of id on axis a moves when
// id itself is resized.
func (c *Context) placedAgainstSelf(id ElementID, a Axis) bool {
	e := &c.elements[id]
	if e.style.autoPositioned() {
		return e.parent != NoElement && c.elements[e.parent].style.align(a) != alignStart
	}
	return e.style.priority(a) == PriorityEnd
}

// outerCascade invalidates the neighborhood of id after its outer size on
// axis a changed.
func (c *Context) outerCascade(id ElementID, a Axis) {
	e := &c.elements[id]
	if !e.style.autoPositioned() || !e.style.Visible || e.parent == NoElement {
		return
	}
	p := e.parent
	pe := &c.elements[p]
	if pe.style.ChildAxis == a {
		flex := pe.style.flexChildren(a)
		align := pe.style.align(a)
		after := false
		for sib := pe.firstChild; sib != NoElement; sib = c.elements[sib].next {
			if sib == id {
				after = true
				continue
			}
			se := &c.elements[sib]
			if !se.style.autoPositioned() {
				continue
			}
			if flex && se.style.size(a).IsPercent() {
				c.invalidate(sib, sizeFlag(a))
			}
			switch {
			case align == alignCenter,
				align == alignStart && after,
				align == alignEnd && !after:
				c.invalidate(sib, PositionInvalid)
			}
		}
	}
	if pe.style.size(a).IsAuto() && !e.style.size(a).IsPercent() {
		c.invalidate(p, sizeFlag(a))
	}
}

// validateText re-measures the text of id. A missing font leaves the
// previous measurement in place.
func (c *Context) validateText(id ElementID) {
	e := &c.elements[id]
	var size [2]float64
	switch {
	case e.text == "":
		e.textLayout = nil
	case c.fonts == nil || e.font == nil:
		c.validated(id, TextInvalid)
		return
	default:
		e.textLayout = c.fonts.LayoutText(e.font, e.text, e.textLayout)
		if e.textLayout != nil {
			size[0], size[1] = e.textLayout.Size()
		}
	}
	if size != e.layout.textSize {
		e.layout.textSize = size
		for _, a := range axes {
			if e.style.size(a).IsAuto() {
				c.invalidate(id, sizeFlag(a))
			}
		}
	}
	c.validated(id, TextInvalid)
	c.scheduleRepaint(id)
}
