package gui

import (
	"errors"
	"fmt"
	"strings"

	"gogui/color"
	"gogui/css"
)

var errUnknownKeyword = errors.New("unknown keyword")

// ApplyDeclarations parses a declaration block such as
// "width: 50%; background-color: #336" and applies it to id in one batch.
// Unknown properties are ignored. Declarations with invalid values are
// skipped and reported in the returned error.
func (c *Context) ApplyDeclarations(id ElementID, block string) error {
	c.el(id)
	c.BeginBatch()
	defer c.EndBatch()

	var errs []error
	for _, d := range css.NewCSSParser(block).Body() {
		if err := c.applyDeclaration(id, d); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Property, err))
		}
	}
	return errors.Join(errs...)
}

var edgeNames = map[string]Edge{
	"left":   EdgeLeft,
	"top":    EdgeTop,
	"right":  EdgeRight,
	"bottom": EdgeBottom,
}

var boundaryNames = map[string]Boundary{
	"outer":        BoundaryOuter,
	"inner-border": BoundaryInnerBorder,
	"inner":        BoundaryInner,
}

func (c *Context) applyDeclaration(id ElementID, d css.Declaration) error {
	prop, value := d.Property, d.Value

	if edge, ok := edgeNames[prop]; ok {
		l, err := ParseLength(value)
		if err != nil {
			return err
		}
		c.SetOffset(id, edge, l)
		return nil
	}
	for _, layer := range []struct {
		prefix, suffix string
		layer          boxLayer
	}{
		{"margin", "", layerMargin},
		{"padding", "", layerPadding},
		{"border", "-width", layerBorder},
	} {
		rest, ok := strings.CutPrefix(prop, layer.prefix)
		if !ok {
			continue
		}
		rest, ok = strings.CutSuffix(rest, layer.suffix)
		if !ok {
			continue
		}
		if rest == "" {
			sides, err := parseSides(value)
			if err != nil {
				return err
			}
			for i, l := range sides {
				c.setEdges(id, layer.layer, l, Edge(i))
			}
			return nil
		}
		if edge, ok := edgeNames[strings.TrimPrefix(rest, "-")]; ok {
			l, err := ParseLength(value)
			if err != nil {
				return err
			}
			c.setEdges(id, layer.layer, l, edge)
			return nil
		}
	}

	switch prop {
	case "width", "height", "min-width", "min-height", "max-width", "max-height":
		l, err := ParseLength(value)
		if err != nil {
			return err
		}
		a := AxisHorizontal
		if strings.HasSuffix(prop, "height") {
			a = AxisVertical
		}
		kind := sizeDeclared
		switch {
		case strings.HasPrefix(prop, "min-"):
			kind = sizeMinimum
		case strings.HasPrefix(prop, "max-"):
			kind = sizeMaximum
		}
		c.setSize(id, a, kind, l)

	case "background-color", "border-color", "color":
		rgba, err := color.Parse(value)
		if err != nil {
			return err
		}
		switch prop {
		case "background-color":
			c.SetBackgroundColor(id, rgba)
		case "border-color":
			c.SetBorderColor(id, rgba)
		default:
			c.SetTextColor(id, rgba)
		}

	case "position":
		mode, err := keyword(value, map[string]Positioning{
			"auto":     PositionAuto,
			"relative": PositionRelative,
			"absolute": PositionAbsolute,
		})
		if err != nil {
			return err
		}
		c.SetPositioning(id, mode)

	case "horizontal-priority", "vertical-priority":
		p, err := keyword(value, map[string]EdgePriority{
			"left": PriorityStart, "top": PriorityStart,
			"right": PriorityEnd, "bottom": PriorityEnd,
		})
		if err != nil {
			return err
		}
		st := c.elements[id].style
		if prop == "horizontal-priority" {
			c.SetEdgePriority(id, p, st.VerticalPriority)
		} else {
			c.SetEdgePriority(id, st.HorizontalPriority, p)
		}

	case "position-origin":
		b, err := keyword(value, boundaryNames)
		if err != nil {
			return err
		}
		c.SetPositionOrigin(id, b)

	case "children-boundary":
		b, err := keyword(value, boundaryNames)
		if err != nil {
			return err
		}
		c.SetChildrenBoundary(id, b, b)

	case "clipping-boundary":
		b, err := keyword(value, boundaryNames)
		if err != nil {
			return err
		}
		c.SetClippingBoundary(id, b)

	case "clipping":
		mode, err := keyword(value, map[string]ClippingMode{
			"parent": ClipToParent,
			"none":   ClipDisabled,
		})
		if err != nil {
			return err
		}
		c.SetClipping(id, mode)

	case "child-axis":
		a, err := keyword(value, map[string]Axis{
			"horizontal": AxisHorizontal,
			"vertical":   AxisVertical,
		})
		if err != nil {
			return err
		}
		c.SetChildAxis(id, a)

	case "horizontal-align":
		h, err := keyword(value, map[string]HorizontalAlign{
			"left":   HorizontalAlignLeft,
			"center": HorizontalAlignCenter,
			"right":  HorizontalAlignRight,
		})
		if err != nil {
			return err
		}
		c.SetHorizontalAlign(id, h)

	case "vertical-align":
		v, err := keyword(value, map[string]VerticalAlign{
			"top":    VerticalAlignTop,
			"center": VerticalAlignCenter,
			"bottom": VerticalAlignBottom,
		})
		if err != nil {
			return err
		}
		c.SetVerticalAlign(id, v)

	case "flex-children":
		f, err := keyword(value, map[string][2]bool{
			"none":   {false, false},
			"width":  {true, false},
			"height": {false, true},
			"both":   {true, true},
		})
		if err != nil {
			return err
		}
		c.SetFlexChildren(id, f[0], f[1])

	case "visibility":
		v, err := keyword(value, map[string]bool{"visible": true, "hidden": false})
		if err != nil {
			return err
		}
		c.SetVisible(id, v)

	case "font-size", "font-weight", "font-style", "font-family":
		desc := c.elements[id].style.Font
		var err error
		switch prop {
		case "font-size":
			desc.Size, err = ParseLength(value)
		case "font-weight":
			desc.Weight, err = keyword(value, map[string]FontWeight{"normal": FontWeightNormal, "bold": FontWeightBold})
		case "font-style":
			desc.Slant, err = keyword(value, map[string]FontSlant{"normal": FontSlantNormal, "italic": FontSlantItalic})
		default:
			if c.fonts == nil {
				return nil
			}
			desc.Family = c.fonts.EncodeFamily(strings.Trim(value, `"'`))
		}
		if err != nil {
			return err
		}
		c.SetFont(id, desc)
	}
	return nil
}

// ParseLength converts "12px", "9pt", "50%" or "auto" into a Length.
func ParseLength(s string) (Length, error) {
	v, unit, err := css.ParseLength(s)
	if err != nil {
		return Length{}, err
	}
	switch unit {
	case "pt":
		return Pt(v), nil
	case "%":
		return Percent(v), nil
	case "auto":
		return Auto(), nil
	}
	return Px(v), nil
}

// parseSides expands the one to four value shorthand of margin, padding and
// border-width into lengths indexed by Edge.
func parseSides(s string) ([4]Length, error) {
	var out [4]Length
	fields := strings.Fields(s)
	ls := make([]Length, len(fields))
	for i, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			return out, err
		}
		ls[i] = l
	}
	var top, right, bottom, left Length
	switch len(ls) {
	case 1:
		top, right, bottom, left = ls[0], ls[0], ls[0], ls[0]
	case 2:
		top, right, bottom, left = ls[0], ls[1], ls[0], ls[1]
	case 3:
		top, right, bottom, left = ls[0], ls[1], ls[2], ls[1]
	case 4:
		top, right, bottom, left = ls[0], ls[1], ls[2], ls[3]
	default:
		return out, fmt.Errorf("expected 1 to 4 lengths, got %d", len(ls))
	}
	out[EdgeLeft], out[EdgeTop], out[EdgeRight], out[EdgeBottom] = left, top, right, bottom
	return out, nil
}

func keyword[T any](value string, options map[string]T) (T, error) {
	v, ok := options[strings.ToLower(value)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w %q", errUnknownKeyword, value)
	}
	return v, nil
}
