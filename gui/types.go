package gui

import "fmt"

// ElementID is a stable handle to an element owned by a Context. The zero
// value never names a live element.
type ElementID uint32

// SurfaceID is a stable handle to a surface owned by a Context.
type SurfaceID uint32

const (
	NoElement ElementID = 0
	NoSurface SurfaceID = 0
)

// DefaultDPI is the base DPI that point lengths are scaled against.
const DefaultDPI = 96.

// Unit tags how a Length value is interpreted.
type Unit uint8

const (
	UnitPixels  Unit = iota // surface pixels, used as-is
	UnitPoints              // scaled by surface DPI / base DPI
	UnitPercent             // percent of a reference size
	UnitAuto                // derived from children or text
)

func (u Unit) String() string {
	switch u {
	case UnitPixels:
		return "px"
	case UnitPoints:
		return "pt"
	case UnitPercent:
		return "%"
	case UnitAuto:
		return "auto"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Length is a unit-tagged value.
type Length struct {
	Value float64
	Unit  Unit
}

func Px(v float64) Length      { return Length{Value: v, Unit: UnitPixels} }
func Pt(v float64) Length      { return Length{Value: v, Unit: UnitPoints} }
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }
func Auto() Length             { return Length{Unit: UnitAuto} }

func (l Length) IsPercent() bool { return l.Unit == UnitPercent }
func (l Length) IsAuto() bool    { return l.Unit == UnitAuto }

func (l Length) String() string {
	if l.Unit == UnitAuto {
		return "auto"
	}
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

// Axis selects a layout direction. It doubles as an index into per-axis
// arrays.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) other() Axis { return 1 - a }

var axes = [2]Axis{AxisHorizontal, AxisVertical}

// Positioning selects how an element's relative position is derived.
type Positioning uint8

const (
	// PositionAuto places the element sequentially among its auto-positioned
	// siblings along the parent's child axis.
	PositionAuto Positioning = iota
	// PositionRelative offsets the element from an edge of its parent.
	PositionRelative
	// PositionAbsolute offsets the element from an edge of its surface and
	// ignores the parent's absolute position.
	PositionAbsolute
)

// EdgePriority selects which of the two offsets of an axis is honoured.
type EdgePriority uint8

const (
	PriorityStart EdgePriority = iota // left / top
	PriorityEnd                       // right / bottom
)

// HorizontalAlign positions auto-positioned children horizontally.
type HorizontalAlign uint8

const (
	HorizontalAlignLeft HorizontalAlign = iota
	HorizontalAlignCenter
	HorizontalAlignRight
)

// VerticalAlign positions auto-positioned children vertically.
type VerticalAlign uint8

const (
	VerticalAlignTop VerticalAlign = iota
	VerticalAlignCenter
	VerticalAlignBottom
)

type alignment uint8

const (
	alignStart alignment = iota
	alignCenter
	alignEnd
)

// Boundary selects one of the nested boxes of an element.
type Boundary uint8

const (
	BoundaryOuter       Boundary = iota // the border box
	BoundaryInnerBorder                 // inside the border
	BoundaryInner                       // inside border and padding
)

// ClippingMode controls whether an element is clipped by its parent.
type ClippingMode uint8

const (
	ClipToParent ClippingMode = iota
	ClipDisabled
)

// Edge indexes one side of a box.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Insets holds resolved pixel widths for the four sides of a box.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// LayoutFlags is the dirty-state bitmask of an element. An element is queued
// for validation exactly when its flags are non-zero.
type LayoutFlags uint8

const (
	WidthInvalid LayoutFlags = 1 << iota
	HeightInvalid
	RelativeXPositionInvalid
	RelativeYPositionInvalid
	TextInvalid

	PositionInvalid = RelativeXPositionInvalid | RelativeYPositionInvalid
	SizeInvalid     = WidthInvalid | HeightInvalid
	AllInvalid      = SizeInvalid | PositionInvalid | TextInvalid
)

func sizeFlag(a Axis) LayoutFlags {
	if a == AxisHorizontal {
		return WidthInvalid
	}
	return HeightInvalid
}
