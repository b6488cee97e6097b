package css

// Size is a width/height pair, used for the viewport and for boxes.
type Size struct {
	Width  float64
	Height float64
}

// Axis selects which dimension of a Size a percentage or border width
// resolves against.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	// AxisMin is the smallest dimension
	AxisMin
	// AxisMax is the largest dimension
	AxisMax
)

// AxisSize returns the chosen dimension of rect.
func AxisSize(axis Axis, rect Size) float64 {
	switch axis {
	case AxisX:
		return rect.Width
	case AxisY:
		return rect.Height
	case AxisMin:
		if rect.Width < rect.Height {
			return rect.Width
		}
		return rect.Height
	default:
		if rect.Width > rect.Height {
			return rect.Width
		}
		return rect.Height
	}
}

// Unit is a CSS length unit.
type Unit int

const (
	Px Unit = iota
	Em
	Rem
	Vw
	Vh
	Vmin
	Vmax
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Vw:
		return "vw"
	case Vh:
		return "vh"
	case Vmin:
		return "vmin"
	case Vmax:
		return "vmax"
	}
	return "unknown"
}

// Length is a CSS length-like expression that can be resolved to pixels.
// Implementations are Dimension, Percentage and the calc() tree nodes
// Sum, Product, Min, Max and Clamp.
type Length interface {
	Resolve(ctx ResolveContext) (float64, error)
}

// Dimension is a number with a unit, e.g. "12px" or "1.5em".
type Dimension struct {
	Amount float64
	Unit   Unit
}

// Percentage is a fraction of the container size ("50%" is 0.5).
type Percentage float64

// Sum is calc(A + B).
type Sum struct {
	A Length
	B Length
}

// Product is calc(Scalar * Of).
type Product struct {
	Scalar float64
	Of     Length
}

// Min is min(Args...).
type Min struct {
	Args []Length
}

// Max is max(Args...).
type Max struct {
	Args []Length
}

// Clamp is clamp(Lo, Val, Hi). Note that the CSS resolution rule is
// max(Lo, min(Val, Hi)): when Lo resolves above Hi the result is Lo,
// regardless of Val.
type Clamp struct {
	Lo  Length
	Val Length
	Hi  Length
}

// BorderWidthKeyword is one of the border-width keywords. The zero value
// is Medium, matching the CSS initial value.
type BorderWidthKeyword int

const (
	Medium BorderWidthKeyword = iota
	Thin
	Thick
)

// BorderSideWidth is the width of one border edge: either a keyword or a
// length. Length nil means the keyword applies.
type BorderSideWidth struct {
	Length  Length
	Keyword BorderWidthKeyword
}

// Resolve turns the border width into pixels. Keywords use fixed widths:
// thin=2, medium=4, thick=6.
func (w BorderSideWidth) Resolve(ctx ResolveContext) (float64, error) {
	if w.Length != nil {
		return w.Length.Resolve(ctx)
	}
	switch w.Keyword {
	case Thin:
		return 2.0, nil
	case Thick:
		return 6.0, nil
	default:
		return 4.0, nil
	}
}
