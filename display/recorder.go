package display

import (
	"image/color"
	"strings"

	"gogui/font"
	"gogui/gui"
	"gogui/rect"
)

// DisplayList holds the commands of one paint of a surface.
type DisplayList struct {
	Surface  gui.SurfaceID
	Token    any
	Commands []Command
}

// Bounds is the union of everything the list draws. Clip changes are not
// drawing.
func (l *DisplayList) Bounds() rect.Rect {
	bounds := rect.NewRectEmpty()
	for _, cmd := range l.Commands {
		if _, ok := cmd.(*SetClip); ok {
			continue
		}
		bounds = bounds.Union(cmd.Rect())
	}
	return bounds
}

func (l *DisplayList) String() string {
	var sb strings.Builder
	for _, cmd := range l.Commands {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Recorder is a gui.Renderer that turns each paint into a DisplayList.
// Text is supported for faces loaded by the font package.
type Recorder struct {
	// Background is the color ClearRect paints with.
	Background color.Color
	// OnPaint, when set, receives every finished list.
	OnPaint func(*DisplayList)

	current *DisplayList
	lists   map[gui.SurfaceID]*DisplayList
}

func NewRecorder() *Recorder {
	return &Recorder{
		Background: color.White,
		lists:      map[gui.SurfaceID]*DisplayList{},
	}
}

func (r *Recorder) BeginPaint(surface gui.SurfaceID, token any) {
	r.current = &DisplayList{Surface: surface, Token: token}
}

func (r *Recorder) EndPaint(surface gui.SurfaceID, token any) {
	list := r.current
	r.current = nil
	if list == nil {
		return
	}
	r.lists[surface] = list
	if r.OnPaint != nil {
		r.OnPaint(list)
	}
}

// List returns the last finished paint of surface.
func (r *Recorder) List(surface gui.SurfaceID) *DisplayList {
	return r.lists[surface]
}

func (r *Recorder) record(cmd Command) {
	if r.current == nil {
		panic("display: paint command outside BeginPaint")
	}
	r.current.Commands = append(r.current.Commands, cmd)
}

func (r *Recorder) ClearRect(area rect.Rect) {
	r.record(NewClearRect(area, r.Background))
}

func (r *Recorder) SetClip(area rect.Rect) {
	r.record(NewSetClip(area))
}

func (r *Recorder) FillRect(area rect.Rect, c color.RGBA) {
	r.record(NewFillRect(area, c))
}

func (r *Recorder) DrawText(run gui.TextRun, x, y float64, c color.RGBA) {
	face, ok := run.Font.(*font.Face)
	if !ok {
		return
	}
	r.record(NewDrawText(x, y, run.Text, face, c))
}

func (r *Recorder) SupportsText(f gui.Font) bool {
	_, ok := f.(*font.Face)
	return ok
}
