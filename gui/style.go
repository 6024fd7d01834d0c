package gui

import "image/color"

// Sides holds one length per box edge.
type Sides struct {
	Left, Top, Right, Bottom Length
}

// UniformSides returns Sides with every edge set to l.
func UniformSides(l Length) Sides {
	return Sides{Left: l, Top: l, Right: l, Bottom: l}
}

func (s *Sides) get(e Edge) Length {
	switch e {
	case EdgeLeft:
		return s.Left
	case EdgeTop:
		return s.Top
	case EdgeRight:
		return s.Right
	}
	return s.Bottom
}

func (s *Sides) set(e Edge, l Length) {
	switch e {
	case EdgeLeft:
		s.Left = l
	case EdgeTop:
		s.Top = l
	case EdgeRight:
		s.Right = l
	default:
		s.Bottom = l
	}
}

// FontFamily is an identifier minted by the FontProvider. Zero selects the
// provider's default family.
type FontFamily uint32

type FontWeight uint8

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

type FontSlant uint8

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
)

// FontDesc describes the font an element's text is laid out with.
type FontDesc struct {
	Family FontFamily
	Weight FontWeight
	Slant  FontSlant
	Size   Length
}

// Style is the declared state of an element. It never holds derived
// geometry; see the layout record for that.
type Style struct {
	Width, Height       Length
	MinWidth, MinHeight Length
	MaxWidth, MaxHeight Length

	Left, Top, Right, Bottom Length

	Margin  Sides
	Padding Sides
	Border  Sides

	Positioning        Positioning
	HorizontalPriority EdgePriority
	VerticalPriority   EdgePriority
	PositionOrigin     Boundary

	ChildrenWidthBoundary  Boundary
	ChildrenHeightBoundary Boundary

	Clipping         ClippingMode
	ClippingBoundary Boundary

	ChildAxis          Axis
	HorizontalAlign    HorizontalAlign
	VerticalAlign      VerticalAlign
	FlexChildrenWidth  bool
	FlexChildrenHeight bool

	Visible bool

	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA

	Font FontDesc
}

// DefaultStyle is the style every new element starts with: content sized,
// zero min, unbounded max, visible, black text in the default font.
func DefaultStyle() Style {
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Auto(),
		MinHeight: Auto(),
		MaxWidth:  Auto(),
		MaxHeight: Auto(),
		Left:      Px(0),
		Top:       Px(0),
		Right:     Px(0),
		Bottom:    Px(0),
		Margin:    UniformSides(Px(0)),
		Padding:   UniformSides(Px(0)),
		Border:    UniformSides(Px(0)),

		ChildrenWidthBoundary:  BoundaryInner,
		ChildrenHeightBoundary: BoundaryInner,
		ClippingBoundary:       BoundaryInner,
		PositionOrigin:         BoundaryInner,
		ChildAxis:              AxisVertical,

		Visible:     true,
		BorderColor: color.RGBA{A: 0xff},
		TextColor:   color.RGBA{A: 0xff},
		Font:        FontDesc{Size: Px(16)},
	}
}

type sizeKind uint8

const (
	sizeDeclared sizeKind = iota
	sizeMinimum
	sizeMaximum
)

func (s *Style) sizeRef(a Axis, kind sizeKind) *Length {
	switch kind {
	case sizeMinimum:
		if a == AxisHorizontal {
			return &s.MinWidth
		}
		return &s.MinHeight
	case sizeMaximum:
		if a == AxisHorizontal {
			return &s.MaxWidth
		}
		return &s.MaxHeight
	}
	if a == AxisHorizontal {
		return &s.Width
	}
	return &s.Height
}

func (s *Style) size(a Axis) Length    { return *s.sizeRef(a, sizeDeclared) }
func (s *Style) minSize(a Axis) Length { return *s.sizeRef(a, sizeMinimum) }
func (s *Style) maxSize(a Axis) Length { return *s.sizeRef(a, sizeMaximum) }

// hasPercentSize reports whether any of the size, min or max on axis a
// depends on the reference size.
func (s *Style) hasPercentSize(a Axis) bool {
	return s.size(a).IsPercent() || s.minSize(a).IsPercent() || s.maxSize(a).IsPercent()
}

// near returns the left or top offset, far the right or bottom one.
func (s *Style) near(a Axis) Length {
	if a == AxisHorizontal {
		return s.Left
	}
	return s.Top
}

func (s *Style) far(a Axis) Length {
	if a == AxisHorizontal {
		return s.Right
	}
	return s.Bottom
}

func (s *Style) offsetRef(e Edge) *Length {
	switch e {
	case EdgeLeft:
		return &s.Left
	case EdgeTop:
		return &s.Top
	case EdgeRight:
		return &s.Right
	}
	return &s.Bottom
}

func (s *Style) priority(a Axis) EdgePriority {
	if a == AxisHorizontal {
		return s.HorizontalPriority
	}
	return s.VerticalPriority
}

func (s *Style) childrenBoundary(a Axis) Boundary {
	if a == AxisHorizontal {
		return s.ChildrenWidthBoundary
	}
	return s.ChildrenHeightBoundary
}

func (s *Style) flexChildren(a Axis) bool {
	if a == AxisHorizontal {
		return s.FlexChildrenWidth
	}
	return s.FlexChildrenHeight
}

// align returns how auto-positioned children are aligned on axis a.
func (s *Style) align(a Axis) alignment {
	if a == AxisHorizontal {
		return alignment(s.HorizontalAlign)
	}
	return alignment(s.VerticalAlign)
}

func (s *Style) autoPositioned() bool {
	return s.Positioning == PositionAuto
}
