package font

import (
	"iter"
	"strings"

	"gogui/gui"
	"gogui/rect"
)

type line struct {
	text  string
	width float64
}

// Layout is newline separated text measured with a Face. Each line becomes
// one run.
type Layout struct {
	face  *Face
	text  string
	lines []line
	width float64
}

// LayoutText measures text with font. A previous layout of the same text
// and face is returned unchanged.
func (m *Manager) LayoutText(font gui.Font, text string, previous gui.TextLayout) gui.TextLayout {
	face, ok := font.(*Face)
	if !ok || face == nil {
		return nil
	}
	if prev, ok := previous.(*Layout); ok && prev.face == face && prev.text == text {
		return prev
	}
	return NewLayout(face, text)
}

func NewLayout(face *Face, text string) *Layout {
	l := &Layout{face: face, text: text}
	for s := range strings.SplitSeq(text, "\n") {
		w := Measure(face.face, s)
		l.lines = append(l.lines, line{text: s, width: w})
		l.width = max(l.width, w)
	}
	return l
}

func (l *Layout) Size() (float64, float64) {
	return l.width, float64(len(l.lines)) * l.face.lineHeight
}

func (l *Layout) Runs(bounds rect.Rect) iter.Seq[gui.TextRun] {
	return func(yield func(gui.TextRun) bool) {
		h := l.face.lineHeight
		for i, ln := range l.lines {
			y := float64(i) * h
			if y >= bounds.Bottom {
				return
			}
			if ln.text == "" || !rect.NewRectSize(0, y, ln.width, h).Intersects(bounds) {
				continue
			}
			run := gui.TextRun{
				Y:      y,
				Width:  ln.width,
				Height: h,
				Text:   ln.text,
				Font:   l.face,
			}
			if !yield(run) {
				return
			}
		}
	}
}
