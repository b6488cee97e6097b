package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"vermeer/pkg/css"
)

// Canvas is the gg-backed scene builder. Text uses the bundled Go Regular
// face so no font files are needed on disk.
type Canvas struct {
	dc    *gg.Context
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int) (*Canvas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bundled font: %w", err)
	}
	return &Canvas{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Fill paints the shape's interior.
func (c *Canvas) Fill(shape RoundedRect, color css.Color) {
	c.setColor(color)
	c.path(shape)
	c.dc.Fill()
}

// Stroke paints the shape's outline centered on the path.
func (c *Canvas) Stroke(shape RoundedRect, width float64, color css.Color) {
	if width <= 0 {
		return
	}
	c.setColor(color)
	c.dc.SetLineWidth(width)
	c.path(shape)
	c.dc.Stroke()
}

// Text draws a text run with its baseline at (x, y).
func (c *Canvas) Text(x, y, size float64, color css.Color, content string) {
	face, ok := c.faces[size]
	if !ok {
		var err error
		face, err = opentype.NewFace(c.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		c.faces[size] = face
	}
	c.dc.SetFontFace(face)
	c.setColor(color)
	c.dc.DrawString(content, x, y)
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to a file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) setColor(color css.Color) {
	c.dc.SetRGBA(
		float64(color.R)/255.0,
		float64(color.G)/255.0,
		float64(color.B)/255.0,
		color.A,
	)
}

// path traces the rounded rectangle with one arc per corner. Degenerate
// (inverted) rectangles trace as-is, nothing clamps them upstream.
func (c *Canvas) path(s RoundedRect) {
	tl, tr, br, bl := math.Max(s.TopLeft, 0), math.Max(s.TopRight, 0), math.Max(s.BottomRight, 0), math.Max(s.BottomLeft, 0)
	c.dc.NewSubPath()
	c.dc.MoveTo(s.X0+tl, s.Y0)
	c.dc.LineTo(s.X1-tr, s.Y0)
	if tr > 0 {
		c.dc.DrawArc(s.X1-tr, s.Y0+tr, tr, -math.Pi/2, 0)
	}
	c.dc.LineTo(s.X1, s.Y1-br)
	if br > 0 {
		c.dc.DrawArc(s.X1-br, s.Y1-br, br, 0, math.Pi/2)
	}
	c.dc.LineTo(s.X0+bl, s.Y1)
	if bl > 0 {
		c.dc.DrawArc(s.X0+bl, s.Y1-bl, bl, math.Pi/2, math.Pi)
	}
	c.dc.LineTo(s.X0, s.Y0+tl)
	if tl > 0 {
		c.dc.DrawArc(s.X0+tl, s.Y0+tl, tl, math.Pi, 3*math.Pi/2)
	}
	c.dc.ClosePath()
}
