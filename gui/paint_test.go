package gui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogui/rect"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func (f *fixture) paint() {
	f.renderer.ops = nil
	w, h := f.c.SurfaceSize(f.surface)
	f.c.PaintSurface(f.surface, rect.NewRect(0, 0, w, h), nil)
}

func (r *recordingRenderer) clips() []rect.Rect {
	var out []rect.Rect
	for _, op := range r.ops {
		if op.op == "clip" {
			out = append(out, op.r)
		}
	}
	return out
}

func TestPaintBordersAreTrimmed(t *testing.T) {
	f := newFixture(t)
	c := f.c
	el := f.root(t)
	c.BeginBatch()
	c.SetSize(el, Px(100), Px(50))
	c.SetBorderWidths(el, Px(2))
	c.SetBorderColor(el, red)
	c.SetBackgroundColor(el, blue)
	c.EndBatch()

	f.paint()
	require.Equal(t, "begin", f.renderer.ops[0].op)
	assert.Equal(t, "end", f.renderer.ops[len(f.renderer.ops)-1].op)
	assert.Equal(t, []rect.Rect{
		rect.NewRect(0, 0, 100, 50),
		rect.NewRect(0, 0, 2, 50),
		rect.NewRect(98, 0, 100, 50),
		rect.NewRect(2, 0, 98, 2),
		rect.NewRect(2, 48, 98, 50),
	}, f.renderer.fills())
}

func TestPaintClipsChildrenToParent(t *testing.T) {
	f := newFixture(t)
	c := f.c
	parent := f.root(t)
	c.SetSize(parent, Px(100), Px(100))

	inside := f.child(t, parent)
	c.SetPositioning(inside, PositionRelative)
	c.SetLeft(inside, Px(80))
	c.SetSize(inside, Px(50), Px(50))
	c.SetBackgroundColor(inside, green)

	escaping := f.child(t, parent)
	c.SetPositioning(escaping, PositionRelative)
	c.SetLeft(escaping, Px(150))
	c.SetSize(escaping, Px(50), Px(50))
	c.SetClipping(escaping, ClipDisabled)
	c.SetBackgroundColor(escaping, red)

	f.paint()
	clips := f.renderer.clips()
	assert.Contains(t, clips, rect.NewRect(80, 0, 100, 50))
	assert.Contains(t, clips, rect.NewRect(150, 0, 200, 50))
	assert.Equal(t, []rect.Rect{rect.NewRect(80, 0, 130, 50), rect.NewRect(150, 0, 200, 50)}, f.renderer.fills())
}

func TestPaintSkipsChildrenOfEmptyClip(t *testing.T) {
	f := newFixture(t)
	c := f.c
	parent := f.root(t)
	c.SetSize(parent, Px(10), Px(10))
	c.SetPaddings(parent, Px(5))

	clipped := f.child(t, parent)
	c.SetPositioning(clipped, PositionRelative)
	c.SetSize(clipped, Px(20), Px(20))
	c.SetBackgroundColor(clipped, green)

	free := f.child(t, parent)
	c.SetPositioning(free, PositionRelative)
	c.SetSize(free, Px(20), Px(20))
	c.SetClipping(free, ClipDisabled)
	c.SetBackgroundColor(free, red)

	f.paint()
	var colors []color.RGBA
	for _, op := range f.renderer.ops {
		if op.op == "fill" {
			colors = append(colors, op.col)
		}
	}
	assert.Equal(t, []color.RGBA{red}, colors)
}

func TestPaintTextInsideInnerBox(t *testing.T) {
	f := newFixture(t)
	c := f.c
	el := f.root(t)
	c.SetPaddings(el, Px(5))
	c.SetText(el, "hi\nyo")
	c.SetTextColor(el, green)
	hidden := f.root(t)
	c.SetText(hidden, "nope")
	c.SetVisible(hidden, false)

	f.paint()
	var texts []paintOp
	for _, op := range f.renderer.ops {
		if op.op == "text" {
			texts = append(texts, op)
		}
	}
	require.Len(t, texts, 2)
	assert.Equal(t, paintOp{op: "text", r: rect.NewRectSize(5, 5, 20, 20), col: green, text: "hi"}, texts[0])
	assert.Equal(t, rect.NewRectSize(5, 25, 20, 20), texts[1].r)
}

func TestDirtyRectAccumulates(t *testing.T) {
	f := newFixture(t)
	c := f.c

	c.InvalidateRect(f.surface, rect.NewRect(900, 900, 1000, 1000))
	assert.Empty(t, f.handler.repaints, "out of bounds invalidation is ignored")

	c.BeginBatch()
	c.InvalidateRect(f.surface, rect.NewRect(10, 10, 20, 20))
	c.InvalidateRect(f.surface, rect.NewRect(50, 5, 60, 15))
	c.InvalidateRect(f.surface, rect.NewRect(790, 590, 900, 900))
	assert.Equal(t, rect.NewRect(10, 5, 800, 600), c.InvalidRect(f.surface))
	c.EndBatch()

	require.Len(t, f.handler.repaints, 1)
	assert.Equal(t, repaint{f.surface, rect.NewRect(10, 5, 800, 600)}, f.handler.repaints[0])
	assert.True(t, c.InvalidRect(f.surface).IsEmpty())
}

func TestColorChangeRepaintsElement(t *testing.T) {
	f := newFixture(t)
	c := f.c
	el := f.root(t)
	c.SetSize(el, Px(30), Px(40))
	f.handler.reset()

	c.SetBackgroundColor(el, red)
	assert.Equal(t, []repaint{{f.surface, rect.NewRect(0, 0, 30, 40)}}, f.handler.repaints)
	assert.Empty(t, f.handler.events)
}

func TestHitTestTopmostWins(t *testing.T) {
	f := newFixture(t)
	c := f.c
	parent := f.root(t)
	c.SetSize(parent, Px(100), Px(100))

	under := f.child(t, parent)
	c.SetPositioning(under, PositionRelative)
	c.SetSize(under, Px(50), Px(50))
	over := f.child(t, parent)
	c.SetPositioning(over, PositionRelative)
	c.SetLeft(over, Px(20))
	c.SetSize(over, Px(100), Px(50))

	assert.Equal(t, over, c.HitTest(f.surface, 30, 10))
	assert.Equal(t, under, c.HitTest(f.surface, 10, 10))
	assert.Equal(t, parent, c.HitTest(f.surface, 10, 80))
	assert.Equal(t, NoElement, c.HitTest(f.surface, 110, 10), "clipped by the parent")

	c.SetVisible(over, false)
	assert.Equal(t, under, c.HitTest(f.surface, 30, 10))
}
