package color

import (
	"fmt"
	col "image/color"

	"github.com/mazznoer/csscolorparser"
)

// Parse converts a CSS color string ("#336", "rgb(10, 20, 30)", "teal",
// "transparent") into a premultiplied RGBA value.
func Parse(color string) (col.RGBA, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.RGBA{}, fmt.Errorf("parse color %q: %w", color, err)
	}
	r, g, b, a := c.RGBA255()
	return col.RGBAModel.Convert(col.NRGBA{R: r, G: g, B: b, A: a}).(col.RGBA), nil
}

// ParseColor is Parse with black as the fallback for unparseable input.
func ParseColor(color string) col.RGBA {
	c, err := Parse(color)
	if err != nil {
		return col.RGBA{A: 0xff}
	}
	return c
}
