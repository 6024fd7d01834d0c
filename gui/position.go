package gui

func (c *Context) validatePosition(id ElementID) {
	e := &c.elements[id]
	switch e.style.Positioning {
	case PositionAuto:
		c.layoutNeighborhood(id)
	case PositionRelative:
		c.setRelative(id, [2]float64{
			c.relativeOffset(id, AxisHorizontal),
			c.relativeOffset(id, AxisVertical),
		})
	case PositionAbsolute:
		c.setRelative(id, [2]float64{
			c.absoluteOffset(id, AxisHorizontal),
			c.absoluteOffset(id, AxisVertical),
		})
	}
	c.validated(id, PositionInvalid)
}

func alignOffset(al alignment, avail, used float64) float64 {
	switch al {
	case alignCenter:
		return (avail - used) / 2
	case alignEnd:
		return avail - used
	}
	return 0
}

// layoutNeighborhood places every visible auto-positioned child of id's
// parent in one go. An auto-positioned root sits at its margins.
func (c *Context) layoutNeighborhood(id ElementID) {
	e := &c.elements[id]
	if e.parent == NoElement {
		c.setRelative(id, [2]float64{e.layout.margin[EdgeLeft], e.layout.margin[EdgeTop]})
		return
	}
	p := e.parent
	along := c.elements[p].style.ChildAxis
	across := along.other()

	total := 0.
	for sib := c.elements[p].firstChild; sib != NoElement; sib = c.elements[sib].next {
		if st := &c.elements[sib].style; !st.autoPositioned() || !st.Visible {
			continue
		}
		for _, a := range axes {
			if c.elements[sib].layout.flags&sizeFlag(a) != 0 {
				c.validateSize(sib, a)
			}
		}
		total += c.elements[sib].layout.outer[along]
	}

	pe := &c.elements[p]
	offset := pe.layout.boxInset(along, BoundaryInner, false) +
		alignOffset(pe.style.align(along), pe.layout.boxSize(along, BoundaryInner), total)
	acrossStart := pe.layout.boxInset(across, BoundaryInner, false)
	acrossAvail := pe.layout.boxSize(across, BoundaryInner)
	acrossAlign := pe.style.align(across)

	for sib := pe.firstChild; sib != NoElement; sib = c.elements[sib].next {
		se := &c.elements[sib]
		if !se.style.autoPositioned() {
			continue
		}
		if se.style.Visible {
			var pos [2]float64
			pos[along] = offset + se.layout.margin.start(along)
			offset += se.layout.outer[along]
			pos[across] = acrossStart + se.layout.margin.start(across) +
				alignOffset(acrossAlign, acrossAvail, se.layout.outer[across])
			c.setRelative(sib, pos)
		}
		if sib != id {
			c.validated(sib, PositionInvalid)
		}
	}
}

// relativeOffset positions id against the PositionOrigin box of its parent,
// or against the surface for a root.
func (c *Context) relativeOffset(id ElementID, a Axis) float64 {
	e := &c.elements[id]
	var extent, nearInset, farInset, ref float64
	if e.parent != NoElement {
		pe := &c.elements[e.parent]
		extent = pe.layout.size[a]
		nearInset = pe.layout.boxInset(a, e.style.PositionOrigin, false)
		farInset = pe.layout.boxInset(a, e.style.PositionOrigin, true)
		ref = pe.layout.boxSize(a, pe.style.childrenBoundary(a))
	} else if e.surface != NoSurface {
		extent = c.surfaces[e.surface].size(a)
		ref = extent
	}
	if e.style.priority(a) == PriorityStart {
		return nearInset + c.resolve(e.surface, e.style.near(a), a, ref) + e.layout.margin.start(a)
	}
	return extent - farInset - c.resolve(e.surface, e.style.far(a), a, ref) -
		e.layout.size[a] - e.layout.margin.end(a)
}

// absoluteOffset positions id against its surface. Percent offsets on both
// axes scale with the matching surface dimension.
func (c *Context) absoluteOffset(id ElementID, a Axis) float64 {
	e := &c.elements[id]
	extent := 0.
	if e.surface != NoSurface {
		extent = c.surfaces[e.surface].size(a)
	}
	if e.style.priority(a) == PriorityStart {
		return c.resolve(e.surface, e.style.near(a), a, extent) + e.layout.margin.start(a)
	}
	return extent - c.resolve(e.surface, e.style.far(a), a, extent) -
		e.layout.size[a] - e.layout.margin.end(a)
}

// setRelative stores a relative position and queues the absolute pass when
// it moved.
func (c *Context) setRelative(id ElementID, pos [2]float64) {
	e := &c.elements[id]
	if e.layout.rel == pos {
		return
	}
	e.layout.rel = pos
	c.queueAbsolute(id)
}

func (c *Context) queueAbsolute(id ElementID) {
	e := &c.elements[id]
	if e.layout.absQueued {
		return
	}
	e.layout.absQueued = true
	c.absPending = append(c.absPending, id)
}

// validateAbsolutePositions recomputes absolute positions below every queued
// element whose ancestors are not queued themselves.
func (c *Context) validateAbsolutePositions() {
	if len(c.absPending) == 0 {
		return
	}
	pending := c.absPending
	c.absPending = nil

	var roots []ElementID
	for _, id := range pending {
		if !c.elements[id].alive {
			continue
		}
		covered := false
		for p := c.elements[id].parent; p != NoElement; p = c.elements[p].parent {
			if c.elements[p].layout.absQueued {
				covered = true
				break
			}
		}
		if !covered {
			roots = append(roots, id)
		}
	}
	for _, root := range roots {
		c.updateAbsolute(root)
	}
	for _, id := range pending {
		c.elements[id].layout.absQueued = false
	}
}

func (c *Context) updateAbsolute(root ElementID) {
	for id := range c.subtree(root) {
		e := &c.elements[id]
		var base [2]float64
		if e.style.Positioning != PositionAbsolute && e.parent != NoElement {
			base = c.elements[e.parent].layout.abs
		}
		abs := [2]float64{base[0] + e.layout.rel[0], base[1] + e.layout.rel[1]}
		if abs != e.layout.abs {
			c.markChanged(id, positionChanged)
			e.layout.abs = abs
		}
	}
}
