package css

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedUnit reports a length expression form this engine does not
// implement. Resolution fails loudly rather than approximating: a silently
// substituted unit corrupts visual output in ways nobody notices until much
// later.
var ErrUnsupportedUnit = errors.New("unsupported unit")

// ErrNaNComparison reports a NaN produced inside min()/max(). A malformed
// style expression is a hard failure, not a recoverable default.
var ErrNaNComparison = errors.New("NaN in min/max comparison")

// ResolveContext carries the contextual sizes a length resolves against.
// All fields are explicit; there are no hidden global defaults.
type ResolveContext struct {
	// ContainerSize is the percentage base.
	ContainerSize float64
	// FontSize is the computed font size of the node being resolved. No
	// unit currently reads it: em deliberately scales DefaultFontSize
	// instead (see that field). It stays in the context so a future
	// em-means-contextual-size switch is a one-line change here rather
	// than a plumbing exercise through every caller.
	FontSize float64
	// RootFontSize scales rem units.
	RootFontSize float64
	// DefaultFontSize scales em units. Historically em was resolved
	// against the engine default rather than the contextual font size;
	// that behavior is kept, just with the constant threaded explicitly.
	DefaultFontSize float64
	// Viewport scales vw/vh/vmin/vmax units.
	Viewport Size
}

// DefaultFontSize is the engine-wide initial font size in pixels.
const DefaultFontSize = 16.0

// NewContext builds a ResolveContext with the stock 16px default and root
// font sizes. Callers threading configured sizes fill the struct directly.
func NewContext(containerSize, fontSize float64, viewport Size) ResolveContext {
	return ResolveContext{
		ContainerSize:   containerSize,
		FontSize:        fontSize,
		RootFontSize:    DefaultFontSize,
		DefaultFontSize: DefaultFontSize,
		Viewport:        viewport,
	}
}

// Resolve turns a dimension into pixels.
func (d Dimension) Resolve(ctx ResolveContext) (float64, error) {
	switch d.Unit {
	case Px:
		return d.Amount, nil
	case Em:
		return d.Amount * ctx.DefaultFontSize, nil
	case Rem:
		return d.Amount * ctx.RootFontSize, nil
	case Vw:
		return d.Amount * ctx.Viewport.Width / 100.0, nil
	case Vh:
		return d.Amount * ctx.Viewport.Height / 100.0, nil
	case Vmin:
		return d.Amount * AxisSize(AxisMin, ctx.Viewport) / 100.0, nil
	case Vmax:
		return d.Amount * AxisSize(AxisMax, ctx.Viewport) / 100.0, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedUnit, d.Unit)
}

// Resolve multiplies the fraction by the container size.
func (p Percentage) Resolve(ctx ResolveContext) (float64, error) {
	return ctx.ContainerSize * float64(p), nil
}

// Resolve is resolve(A) + resolve(B).
func (s Sum) Resolve(ctx ResolveContext) (float64, error) {
	a, err := s.A.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	b, err := s.B.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

// Resolve is Scalar * resolve(Of).
func (p Product) Resolve(ctx ResolveContext) (float64, error) {
	v, err := p.Of.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return p.Scalar * v, nil
}

// Resolve takes the minimum of the resolved arguments.
func (m Min) Resolve(ctx ResolveContext) (float64, error) {
	return fold(m.Args, ctx, func(best, v float64) bool { return v < best })
}

// Resolve takes the maximum of the resolved arguments.
func (m Max) Resolve(ctx ResolveContext) (float64, error) {
	return fold(m.Args, ctx, func(best, v float64) bool { return v > best })
}

func fold(args []Length, ctx ResolveContext, better func(best, v float64) bool) (float64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: empty min/max argument list", ErrUnsupportedUnit)
	}
	best, err := args[0].Resolve(ctx)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(best) {
		return 0, ErrNaNComparison
	}
	for _, arg := range args[1:] {
		v, err := arg.Resolve(ctx)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) {
			return 0, ErrNaNComparison
		}
		if better(best, v) {
			best = v
		}
	}
	return best, nil
}

// Resolve evaluates max(Lo, min(Val, Hi)). This is not a guard against
// Lo > Hi: when the bounds cross, Lo wins regardless of Val.
func (c Clamp) Resolve(ctx ResolveContext) (float64, error) {
	lo, err := c.Lo.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	val, err := c.Val.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	hi, err := c.Hi.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return math.Max(lo, math.Min(val, hi)), nil
}
