// Package render turns resolved styles and layout boxes into paint
// commands: a geometry resolver producing rounded rectangles, a document-
// order paint walker, and two scene builders (a gg-backed canvas and a
// recording double for tests).
package render

import (
	"vermeer/pkg/config"
	"vermeer/pkg/css"
	"vermeer/pkg/layout"
	"vermeer/pkg/style"
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// RoundedRect is a rectangle from (X0,Y0) to (X1,Y1) with one radius per
// corner.
type RoundedRect struct {
	X0, Y0, X1, Y1                             float64
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Rect builds a square-cornered rectangle.
func Rect(x, y, width, height float64) RoundedRect {
	return RoundedRect{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

// Width returns X1-X0.
func (r RoundedRect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1-Y0.
func (r RoundedRect) Height() float64 { return r.Y1 - r.Y0 }

// Inset shrinks the rectangle by d on every side, keeping the radii.
func (r RoundedRect) Inset(d float64) RoundedRect {
	r.X0 += d
	r.Y0 += d
	r.X1 -= d
	r.Y1 -= d
	return r
}

// ResolveShape computes a node's draw geometry. Strokes are drawn centered
// on the path, so each edge insets its corner by half that edge's border
// width: left/top move the start corner inward, right/bottom the end
// corner. A focused node substitutes the configured focus ring width on
// all four edges. Corner radii resolve with the box's smaller dimension as
// the percentage base.
//
// Nothing clamps the result: a border wider than the box yields an
// inverted rectangle, which downstream code must tolerate.
func ResolveShape(box layout.Box, border style.Border, pos Point, fontSize float64, cfg config.Config, focused bool) (RoundedRect, error) {
	ctx := cfg.Context(css.AxisSize(css.AxisMin, css.Size{Width: box.Width, Height: box.Height}), fontSize)

	edge := func(w css.BorderSideWidth) (float64, error) {
		if focused {
			return cfg.FocusRingWidth, nil
		}
		return w.Resolve(ctx)
	}

	left, err := edge(border.Widths.Left)
	if err != nil {
		return RoundedRect{}, err
	}
	right, err := edge(border.Widths.Right)
	if err != nil {
		return RoundedRect{}, err
	}
	top, err := edge(border.Widths.Top)
	if err != nil {
		return RoundedRect{}, err
	}
	bottom, err := edge(border.Widths.Bottom)
	if err != nil {
		return RoundedRect{}, err
	}

	shape := RoundedRect{
		X0: pos.X + left/2,
		Y0: pos.Y + top/2,
		X1: pos.X + box.Width - right/2,
		Y1: pos.Y + box.Height - bottom/2,
	}

	if shape.TopLeft, err = resolveRadius(border.Radius.TopLeft, ctx); err != nil {
		return RoundedRect{}, err
	}
	if shape.TopRight, err = resolveRadius(border.Radius.TopRight, ctx); err != nil {
		return RoundedRect{}, err
	}
	if shape.BottomRight, err = resolveRadius(border.Radius.BottomRight, ctx); err != nil {
		return RoundedRect{}, err
	}
	if shape.BottomLeft, err = resolveRadius(border.Radius.BottomLeft, ctx); err != nil {
		return RoundedRect{}, err
	}
	return shape, nil
}

func resolveRadius(l css.Length, ctx css.ResolveContext) (float64, error) {
	if l == nil {
		return 0, nil
	}
	return l.Resolve(ctx)
}
