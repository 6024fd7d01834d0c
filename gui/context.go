package gui

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"gogui/rect"
)

// maxValidationRounds bounds the layout / notification loop of one batch. A
// handler that keeps mutating layout from its callbacks would otherwise
// spin forever.
const maxValidationRounds = 64

// Context owns every element and surface and runs layout and paint
// validation whenever the outermost batch ends. It is not safe for
// concurrent use.
type Context struct {
	elements    []element
	freeList    []ElementID
	pendingFree []ElementID
	surfaces    []surface
	freeSurface []SurfaceID

	invalid    worklist
	absPending []ElementID
	changed    []ElementID
	repaint    []ElementID

	batchDepth int
	baseDPI    [2]float64

	fonts    FontProvider
	renderer Renderer
	handler  Handler
	tracer   Tracer
	log      *slog.Logger
}

type Option func(*Context)

func WithFontProvider(p FontProvider) Option {
	return func(c *Context) { c.fonts = p }
}

func WithRenderer(r Renderer) Option {
	return func(c *Context) { c.renderer = r }
}

func WithHandler(h Handler) Option {
	return func(c *Context) { c.handler = h }
}

func WithBaseDPI(x, y float64) Option {
	return func(c *Context) { c.baseDPI = [2]float64{x, y} }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.log = l }
}

func WithTracer(t Tracer) Option {
	return func(c *Context) { c.tracer = t }
}

func New(opts ...Option) *Context {
	c := &Context{
		elements: make([]element, 1),
		surfaces: make([]surface, 1),
		baseDPI:  [2]float64{DefaultDPI, DefaultDPI},
		handler:  BaseHandler{},
		tracer:   nopTracer{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.invalid.grow(len(c.elements))
	return c
}

// SetHandler replaces the embedder callback. Passing nil restores the no-op
// handler.
func (c *Context) SetHandler(h Handler) {
	if h == nil {
		h = BaseHandler{}
	}
	c.handler = h
}

// SetRenderer replaces the paint sink used by PaintSurface.
func (c *Context) SetRenderer(r Renderer) {
	c.renderer = r
}

// BeginBatch defers validation until the matching EndBatch. Batches nest.
func (c *Context) BeginBatch() {
	c.batchDepth++
}

// EndBatch closes a batch. Closing the outermost batch validates layout,
// delivers change notifications and requests repaints. An unmatched call
// is ignored.
func (c *Context) EndBatch() {
	if c.batchDepth == 0 {
		return
	}
	c.batchDepth--
	if c.batchDepth > 0 {
		return
	}
	// Hold a batch open so callbacks mutating the tree do not re-enter
	// validation; their work is picked up by the next round.
	c.batchDepth++
	c.validate()
	c.batchDepth--
}

// Validate runs any pending validation. It is a no-op inside a batch.
func (c *Context) Validate() {
	c.BeginBatch()
	c.EndBatch()
}

func (c *Context) validate() {
	start := time.Now()
	rounds := 0
	for {
		c.tracer.Time("layout")
		c.validateLayout()
		c.tracer.Stop("layout")
		c.notifyChanges()
		rounds++
		settled := c.layoutSettled()
		if settled {
			c.releaseElements()
			c.validatePaint()
			// OnRepaint may have mutated the tree again.
			if c.layoutSettled() && !c.paintPending() {
				break
			}
		}
		if rounds >= maxValidationRounds {
			c.log.Warn("layout did not settle", "rounds", rounds, "pending", c.invalid.len())
			if !settled {
				c.releaseElements()
				c.validatePaint()
			}
			break
		}
	}
	c.log.Debug("batch validated", "rounds", rounds, "elements", len(c.elements)-1, "took", time.Since(start))
}

// layoutSettled reports whether no layout, notification or repaint work is
// queued.
func (c *Context) layoutSettled() bool {
	return c.invalid.len() == 0 && len(c.absPending) == 0 &&
		len(c.changed) == 0 && len(c.repaint) == 0
}

func (c *Context) paintPending() bool {
	for i := 1; i < len(c.surfaces); i++ {
		if c.surfaces[i].alive && !c.surfaces[i].invalid.IsEmpty() {
			return true
		}
	}
	return false
}

func (c *Context) el(id ElementID) *element {
	if id == NoElement || int(id) >= len(c.elements) || !c.elements[id].alive {
		panic(fmt.Sprintf("gui: invalid element %d", id))
	}
	return &c.elements[id]
}

func (c *Context) surf(id SurfaceID) *surface {
	if id == NoSurface || int(id) >= len(c.surfaces) || !c.surfaces[id].alive {
		panic(fmt.Sprintf("gui: invalid surface %d", id))
	}
	return &c.surfaces[id]
}

// IsElement reports whether id names a live element.
func (c *Context) IsElement(id ElementID) bool {
	return id != NoElement && int(id) < len(c.elements) && c.elements[id].alive
}

// IsSurface reports whether id names a live surface.
func (c *Context) IsSurface(id SurfaceID) bool {
	return id != NoSurface && int(id) < len(c.surfaces) && c.surfaces[id].alive
}

// surface is a canvas hosting an ordered list of root elements.
type surface struct {
	alive               bool
	width, height       float64
	dpi                 [2]float64
	firstRoot, lastRoot ElementID
	invalid             rect.Rect
	hover, capture      ElementID
}

func (s *surface) size(a Axis) float64 {
	if a == AxisHorizontal {
		return s.width
	}
	return s.height
}

func (s *surface) bounds() rect.Rect {
	return rect.NewRectSize(0, 0, s.width, s.height)
}

// CreateSurface creates a surface of the given size at the base DPI.
func (c *Context) CreateSurface(width, height float64) SurfaceID {
	var id SurfaceID
	if n := len(c.freeSurface); n > 0 {
		id = c.freeSurface[n-1]
		c.freeSurface = c.freeSurface[:n-1]
	} else {
		c.surfaces = append(c.surfaces, surface{})
		id = SurfaceID(len(c.surfaces) - 1)
	}
	c.surfaces[id] = surface{
		alive:  true,
		width:  width,
		height: height,
		dpi:    c.baseDPI,
	}
	return id
}

// DeleteSurface detaches every root of s, leaving the elements alive, and
// releases the surface.
func (c *Context) DeleteSurface(s SurfaceID) {
	c.surf(s)
	c.BeginBatch()
	defer c.EndBatch()
	for root := c.surfaces[s].firstRoot; root != NoElement; root = c.surfaces[s].firstRoot {
		c.move(root, NoElement, NoSurface, NoElement)
	}
	c.surfaces[s] = surface{}
	c.freeSurface = append(c.freeSurface, s)
}

func (c *Context) SurfaceSize(s SurfaceID) (width, height float64) {
	sf := c.surf(s)
	return sf.width, sf.height
}

// SetSurfaceSize resizes s and relayouts everything that depends on its
// size.
func (c *Context) SetSurfaceSize(s SurfaceID, width, height float64) {
	sf := c.surf(s)
	if sf.width == width && sf.height == height {
		return
	}
	c.BeginBatch()
	defer c.EndBatch()
	sf.width, sf.height = width, height
	for root := sf.firstRoot; root != NoElement; root = c.elements[root].next {
		c.invalidate(root, SizeInvalid|PositionInvalid)
	}
	for id := range c.SurfaceElements(s) {
		if c.elements[id].style.Positioning == PositionAbsolute {
			c.invalidate(id, PositionInvalid)
		}
	}
	c.invalidateRect(s, sf.bounds())
}

// Surfaces yields every live surface.
func (c *Context) Surfaces() iter.Seq[SurfaceID] {
	return func(yield func(SurfaceID) bool) {
		for i := 1; i < len(c.surfaces); i++ {
			if c.surfaces[i].alive && !yield(SurfaceID(i)) {
				return
			}
		}
	}
}
