package gui

import (
	"image/color"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gogui/rect"
)

// Fixed metrics: every character is 10px wide and every line 20px tall.
const (
	charWidth  = 10.
	lineHeight = 20.
)

type testFont struct {
	desc FontDesc
	dpi  [2]float64
}

func (f *testFont) LineHeight() float64 { return lineHeight }

type testLayout struct {
	lines []string
	font  *testFont
}

func (l *testLayout) Size() (float64, float64) {
	w := 0.
	for _, line := range l.lines {
		w = max(w, float64(len(line))*charWidth)
	}
	return w, float64(len(l.lines)) * lineHeight
}

func (l *testLayout) Runs(bounds rect.Rect) iter.Seq[TextRun] {
	return func(yield func(TextRun) bool) {
		for i, line := range l.lines {
			run := TextRun{
				Y:      float64(i) * lineHeight,
				Width:  float64(len(line)) * charWidth,
				Height: lineHeight,
				Text:   line,
				Font:   l.font,
			}
			if !rect.NewRectSize(run.X, run.Y, run.Width, run.Height).Intersects(bounds) {
				continue
			}
			if !yield(run) {
				return
			}
		}
	}
}

type testFonts struct {
	families []string
	acquired int
}

func (p *testFonts) EncodeFamily(name string) FontFamily {
	for i, f := range p.families {
		if f == name {
			return FontFamily(i + 1)
		}
	}
	p.families = append(p.families, name)
	return FontFamily(len(p.families))
}

func (p *testFonts) DecodeFamily(family FontFamily) string {
	if family == 0 || int(family) > len(p.families) {
		return ""
	}
	return p.families[family-1]
}

func (p *testFonts) AcquireFont(desc FontDesc, dpiX, dpiY float64) Font {
	p.acquired++
	return &testFont{desc: desc, dpi: [2]float64{dpiX, dpiY}}
}

func (p *testFonts) LayoutText(font Font, text string, _ TextLayout) TextLayout {
	return &testLayout{lines: strings.Split(text, "\n"), font: font.(*testFont)}
}

type event struct {
	kind       string
	el         ElementID
	x, y, w, h float64
}

type repaint struct {
	surface SurfaceID
	area    rect.Rect
}

type recordingHandler struct {
	events    []event
	repaints  []repaint
	onMove    func(el ElementID)
	onSize    func(el ElementID)
	onRepaint func(s SurfaceID)
}

func (h *recordingHandler) OnRepaint(s SurfaceID, area rect.Rect) {
	h.repaints = append(h.repaints, repaint{s, area})
	if h.onRepaint != nil {
		h.onRepaint(s)
	}
}

func (h *recordingHandler) OnSize(el ElementID, w, hh float64) {
	h.events = append(h.events, event{kind: "size", el: el, w: w, h: hh})
	if h.onSize != nil {
		h.onSize(el)
	}
}

func (h *recordingHandler) OnMove(el ElementID, x, y float64) {
	h.events = append(h.events, event{kind: "move", el: el, x: x, y: y})
	if h.onMove != nil {
		h.onMove(el)
	}
}

func (h *recordingHandler) OnSizeAndMove(el ElementID, x, y, w, hh float64) {
	h.events = append(h.events, event{kind: "sizemove", el: el, x: x, y: y, w: w, h: hh})
}

func (h *recordingHandler) OnMouseEnter(el ElementID) {
	h.events = append(h.events, event{kind: "enter", el: el})
}

func (h *recordingHandler) OnMouseLeave(el ElementID) {
	h.events = append(h.events, event{kind: "leave", el: el})
}

func (h *recordingHandler) OnMouseMove(el ElementID, x, y float64) {
	h.events = append(h.events, event{kind: "mouse", el: el, x: x, y: y})
}

func (h *recordingHandler) reset() {
	h.events = nil
	h.repaints = nil
}

func (h *recordingHandler) eventsFor(el ElementID) []event {
	var out []event
	for _, ev := range h.events {
		if ev.el == el {
			out = append(out, ev)
		}
	}
	return out
}

type paintOp struct {
	op   string
	r    rect.Rect
	col  color.RGBA
	text string
}

type recordingRenderer struct {
	ops []paintOp
}

func (r *recordingRenderer) BeginPaint(SurfaceID, any) { r.ops = append(r.ops, paintOp{op: "begin"}) }
func (r *recordingRenderer) EndPaint(SurfaceID, any)   { r.ops = append(r.ops, paintOp{op: "end"}) }
func (r *recordingRenderer) ClearRect(rc rect.Rect) {
	r.ops = append(r.ops, paintOp{op: "clear", r: rc})
}
func (r *recordingRenderer) SetClip(rc rect.Rect)   { r.ops = append(r.ops, paintOp{op: "clip", r: rc}) }
func (r *recordingRenderer) SupportsText(Font) bool { return true }

func (r *recordingRenderer) FillRect(rc rect.Rect, c color.RGBA) {
	r.ops = append(r.ops, paintOp{op: "fill", r: rc, col: c})
}

func (r *recordingRenderer) DrawText(run TextRun, x, y float64, c color.RGBA) {
	r.ops = append(r.ops, paintOp{op: "text", r: rect.NewRectSize(x, y, run.Width, run.Height), col: c, text: run.Text})
}

func (r *recordingRenderer) fills() []rect.Rect {
	var out []rect.Rect
	for _, op := range r.ops {
		if op.op == "fill" {
			out = append(out, op.r)
		}
	}
	return out
}

type fixture struct {
	c        *Context
	fonts    *testFonts
	handler  *recordingHandler
	renderer *recordingRenderer
	surface  SurfaceID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		fonts:    &testFonts{},
		handler:  &recordingHandler{},
		renderer: &recordingRenderer{},
	}
	f.c = New(
		WithFontProvider(f.fonts),
		WithHandler(f.handler),
		WithRenderer(f.renderer),
	)
	f.surface = f.c.CreateSurface(800, 600)
	return f
}

// root creates an element attached to the fixture surface.
func (f *fixture) root(t *testing.T) ElementID {
	t.Helper()
	id := f.c.CreateElement()
	assert.True(t, f.c.AttachToSurface(id, f.surface))
	return id
}

func (f *fixture) child(t *testing.T, parent ElementID) ElementID {
	t.Helper()
	id := f.c.CreateElement()
	assert.True(t, f.c.AppendChild(parent, id))
	return id
}

// assertWorklistConsistent checks that exactly the elements with dirty
// flags are queued.
func assertWorklistConsistent(t *testing.T, c *Context) {
	t.Helper()
	queued := 0
	for id := c.invalid.front(); id != NoElement; id = c.invalid.links[id].next {
		queued++
		if !assert.True(t, c.elements[id].alive, "dead element %d queued", id) {
			return
		}
	}
	assert.Equal(t, c.invalid.len(), queued)
	for i := 1; i < len(c.elements); i++ {
		id := ElementID(i)
		e := &c.elements[i]
		assert.Equal(t, e.alive && e.layout.flags != 0, c.invalid.contains(id), "element %d flags %b", id, e.layout.flags)
	}
}
