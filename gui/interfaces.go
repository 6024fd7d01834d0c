package gui

import (
	"image/color"
	"iter"

	"gogui/rect"
)

// Font is an opaque handle acquired from a FontProvider.
type Font interface {
	LineHeight() float64
}

// TextRun is a positioned piece of laid out text. X and Y are the run's
// top-left corner relative to the text origin.
type TextRun struct {
	X, Y          float64
	Width, Height float64
	Text          string
	Font          Font
}

// TextLayout is a measured string.
type TextLayout interface {
	Size() (width, height float64)
	// Runs yields the runs intersecting bounds, given relative to the text
	// origin.
	Runs(bounds rect.Rect) iter.Seq[TextRun]
}

// FontProvider resolves font descriptions and measures text.
type FontProvider interface {
	EncodeFamily(name string) FontFamily
	DecodeFamily(family FontFamily) string
	// AcquireFont returns nil when no face matches desc. dpiX and dpiY are
	// scaled by DefaultDPI over the base DPI of the context.
	AcquireFont(desc FontDesc, dpiX, dpiY float64) Font
	// LayoutText measures text with font. previous is the element's last
	// layout, which the provider may reuse.
	LayoutText(font Font, text string, previous TextLayout) TextLayout
}

// Renderer receives the paint traversal of a surface.
type Renderer interface {
	BeginPaint(surface SurfaceID, token any)
	EndPaint(surface SurfaceID, token any)
	ClearRect(r rect.Rect)
	SetClip(r rect.Rect)
	FillRect(r rect.Rect, c color.RGBA)
	// DrawText draws run with its top-left corner at x, y.
	DrawText(run TextRun, x, y float64, c color.RGBA)
	SupportsText(font Font) bool
}

// Handler is notified by the context. Callbacks run after the engine has
// finished with the state they describe and may mutate the tree.
type Handler interface {
	OnRepaint(surface SurfaceID, area rect.Rect)
	OnSize(el ElementID, width, height float64)
	OnMove(el ElementID, x, y float64)
	OnSizeAndMove(el ElementID, x, y, width, height float64)
	OnMouseEnter(el ElementID)
	OnMouseLeave(el ElementID)
	OnMouseMove(el ElementID, x, y float64)
}

// BaseHandler implements Handler with no-ops. Embed it to override a subset.
type BaseHandler struct{}

func (BaseHandler) OnRepaint(SurfaceID, rect.Rect)                              {}
func (BaseHandler) OnSize(ElementID, float64, float64)                          {}
func (BaseHandler) OnMove(ElementID, float64, float64)                          {}
func (BaseHandler) OnSizeAndMove(ElementID, float64, float64, float64, float64) {}
func (BaseHandler) OnMouseEnter(ElementID)                                      {}
func (BaseHandler) OnMouseLeave(ElementID)                                      {}
func (BaseHandler) OnMouseMove(ElementID, float64, float64)                     {}

// Tracer brackets named passes.
type Tracer interface {
	Time(name string)
	Stop(name string)
}

type nopTracer struct{}

func (nopTracer) Time(string) {}
func (nopTracer) Stop(string) {}
