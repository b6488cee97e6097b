package render

import "vermeer/pkg/css"

// Scene accepts paint commands from the walker. Implementations are the
// gg-backed Canvas and the Recorder test double.
type Scene interface {
	// Fill paints the shape's interior.
	Fill(shape RoundedRect, color css.Color)
	// Stroke paints the shape's outline, centered on the path.
	Stroke(shape RoundedRect, width float64, color css.Color)
	// Text submits a text run with its baseline at (x, y).
	Text(x, y, size float64, color css.Color, content string)
}

// OpKind discriminates recorded paint commands.
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

// Op is one recorded paint command.
type Op struct {
	Kind  OpKind
	Shape RoundedRect
	Width float64
	Color css.Color
	X, Y  float64
	Size  float64
	Text  string
}

// Recorder captures paint commands in submission order.
type Recorder struct {
	Ops []Op
}

// Fill records a fill command.
func (r *Recorder) Fill(shape RoundedRect, color css.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Shape: shape, Color: color})
}

// Stroke records a stroke command.
func (r *Recorder) Stroke(shape RoundedRect, width float64, color css.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Shape: shape, Width: width, Color: color})
}

// Text records a text run.
func (r *Recorder) Text(x, y, size float64, color css.Color, content string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Size: size, Color: color, Text: content})
}
