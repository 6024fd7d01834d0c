package rect

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in surface pixels. Right and Bottom are
// exclusive.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func NewRect(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// NewRectSize builds a rectangle from an origin and a size.
func NewRectSize(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

func NewRectEmpty() Rect {
	return Rect{}
}

func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() && other.IsEmpty() {
		return NewRectEmpty()
	} else if r.IsEmpty() {
		return other
	} else if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left < right && top < bottom {
		return NewRect(left, top, right, bottom)
	}
	return NewRectEmpty()
}

// Inset pulls each edge inwards by the given amounts. An over-inset
// rectangle collapses to zero area instead of inverting.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	r.Left += left
	r.Top += top
	r.Right -= right
	r.Bottom -= bottom
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	return r
}

func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

func (r Rect) RoundOutToInt() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)),
		int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)),
		int(math.Ceil(r.Bottom)),
	)
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.Left && x < r.Right &&
		y >= r.Top && y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(left=%.2f, top=%.2f, right=%.2f, bottom=%.2f)", r.Left, r.Top, r.Right, r.Bottom)
}
