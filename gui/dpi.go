package gui

func (c *Context) SurfaceDPI(s SurfaceID) (x, y float64) {
	sf := c.surf(s)
	return sf.dpi[0], sf.dpi[1]
}

// SetSurfaceDPI changes the DPI of s and relayouts everything on it.
func (c *Context) SetSurfaceDPI(s SurfaceID, x, y float64) {
	sf := c.surf(s)
	if sf.dpi == [2]float64{x, y} {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	sf.dpi = [2]float64{x, y}
	c.rescale(s)
}

func (c *Context) BaseDPI() (x, y float64) {
	return c.baseDPI[0], c.baseDPI[1]
}

// SetBaseDPI changes the DPI point lengths are defined against and
// relayouts every surface.
func (c *Context) SetBaseDPI(x, y float64) {
	if c.baseDPI == [2]float64{x, y} {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	c.baseDPI = [2]float64{x, y}
	for s := range c.Surfaces() {
		c.rescale(s)
	}
}

// rescale re-resolves every DPI dependent length on s and invalidates the
// whole surface.
func (c *Context) rescale(s SurfaceID) {
	for id := range c.SurfaceElements(s) {
		c.refreshEdges(id)
		c.refreshFont(id)
		c.invalidate(id, AllInvalid)
	}
	c.invalidateRect(s, c.surfaces[s].bounds())
}
