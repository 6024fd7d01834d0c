package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"

	"gogui/font"
	"gogui/rect"
)

// Command is one recorded paint operation.
type Command interface {
	Execute(*gg.Context)
	Rect() rect.Rect
	String() string
}

type PaintCommand struct {
	rect rect.Rect
}

func (p *PaintCommand) Rect() rect.Rect {
	return p.rect
}

// ClearRect replaces the pixels under rect with a color, ignoring the clip.
type ClearRect struct {
	PaintCommand
	color color.Color
}

func NewClearRect(r rect.Rect, c color.Color) *ClearRect {
	return &ClearRect{PaintCommand: PaintCommand{rect: r}, color: c}
}

func (d *ClearRect) Execute(canvas *gg.Context) {
	im, ok := canvas.Image().(draw.Image)
	if !ok {
		return
	}
	draw.Draw(im, d.rect.RoundOutToInt(), image.NewUniform(d.color), image.Point{}, draw.Src)
}

func (d *ClearRect) String() string {
	return fmt.Sprint("ClearRect(rect=", d.rect, ")")
}

// SetClip replaces the clip of the following commands.
type SetClip struct {
	PaintCommand
}

func NewSetClip(r rect.Rect) *SetClip {
	return &SetClip{PaintCommand: PaintCommand{rect: r}}
}

func (d *SetClip) Execute(canvas *gg.Context) {
	canvas.ResetClip()
	canvas.DrawRectangle(d.rect.Left, d.rect.Top, d.rect.Width(), d.rect.Height())
	canvas.Clip()
}

func (d *SetClip) String() string {
	return fmt.Sprint("SetClip(rect=", d.rect, ")")
}

type FillRect struct {
	PaintCommand
	color color.RGBA
}

func NewFillRect(r rect.Rect, c color.RGBA) *FillRect {
	return &FillRect{PaintCommand: PaintCommand{rect: r}, color: c}
}

func (d *FillRect) Execute(canvas *gg.Context) {
	canvas.SetColor(d.color)
	canvas.DrawRectangle(d.rect.Left, d.rect.Top, d.rect.Width(), d.rect.Height())
	canvas.Fill()
}

func (d *FillRect) String() string {
	return fmt.Sprint("FillRect(rect=", d.rect, ", color=", d.color, ")")
}

type DrawText struct {
	PaintCommand
	text  string
	face  fnt.Face
	color color.RGBA
}

func NewDrawText(x, y float64, text string, face *font.Face, c color.RGBA) *DrawText {
	src := face.Source()
	r := rect.NewRect(x, y, x+font.Measure(src, text), y+face.LineHeight())
	return &DrawText{
		PaintCommand: PaintCommand{rect: r},
		text:         text,
		face:         src,
		color:        c,
	}
}

func (d *DrawText) Execute(canvas *gg.Context) {
	canvas.SetColor(d.color)
	canvas.SetFontFace(d.face)
	canvas.DrawString(d.text, d.rect.Left, d.rect.Top+font.Ascent(d.face))
}

func (d *DrawText) String() string {
	return fmt.Sprint("DrawText(rect=", d.rect, ", text='", d.text, "', color=", d.color, ")")
}

// Text returns the drawn string.
func (d *DrawText) Text() string {
	return d.text
}
