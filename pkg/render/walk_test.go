package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vermeer/pkg/config"
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
	"vermeer/pkg/layout"
	"vermeer/pkg/style"
)

type paintEnv struct {
	tree    *dom.Tree
	store   *style.Store
	layouts *layout.Store
	cfg     config.Config
}

func newPaintEnv(t *testing.T) *paintEnv {
	t.Helper()
	cfg := config.Default()
	env := &paintEnv{
		tree:    dom.NewTree(),
		store:   style.NewStore(cfg),
		layouts: layout.NewStore(),
		cfg:     cfg,
	}
	env.box(env.tree.Root(), layout.Box{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight})
	return env
}

func (e *paintEnv) box(n *dom.Node, b layout.Box) {
	e.store.SetLayoutNode(n.ID, e.layouts.Insert(b))
}

func opKinds(ops []Op) []OpKind {
	kinds := make([]OpKind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	return kinds
}

func TestPaint_PageThenRoot(t *testing.T) {
	env := newPaintEnv(t)
	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))

	// page fill, then the root element's own stroke and fill
	require.Equal(t, []OpKind{OpFill, OpStroke, OpFill}, opKinds(rec.Ops))
	assert.Equal(t, css.White, rec.Ops[0].Color)
	assert.Equal(t, 800.0, rec.Ops[0].Shape.Width())
	assert.Equal(t, 4.0, rec.Ops[1].Width, "default border strokes at medium width")
	assert.Equal(t, 0.0, rec.Ops[2].Color.A, "default background is transparent")
}

func TestPaint_FocusedDoubleRing(t *testing.T) {
	env := newPaintEnv(t)
	button := env.tree.AppendElement(env.tree.Root(), "button")
	env.box(button, layout.Box{X: 100, Y: 50, Width: 160, Height: 48})
	env.store.SetFocused(button.ID, true)

	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))

	require.Equal(t, []OpKind{OpFill, OpStroke, OpFill, OpStroke, OpStroke, OpFill}, opKinds(rec.Ops))
	white, black, fill := rec.Ops[3], rec.Ops[4], rec.Ops[5]

	assert.Equal(t, css.White, white.Color, "outer ring strokes white first")
	assert.Equal(t, css.Black, black.Color, "inner ring strokes black over it")
	assert.Equal(t, white.Shape, black.Shape, "both rings stroke the full geometry")
	assert.Equal(t, 3.0, white.Width, "ring strokes at half the configured width")
	assert.Equal(t, 3.0, black.Width)

	// geometry insets by half the 6px ring, 103..257 horizontally
	assert.Equal(t, 103.0, white.Shape.X0)
	assert.Equal(t, 257.0, white.Shape.X1)
	assert.Equal(t, black.Shape.Inset(3.0), fill.Shape, "the fill sits inside the ring")
}

func TestPaint_UnfocusedStrokeThenFill(t *testing.T) {
	env := newPaintEnv(t)
	card := env.tree.AppendElement(env.tree.Root(), "section")
	card.SetAttribute("ignored", "x")
	env.box(card, layout.Box{X: 10, Y: 10, Width: 200, Height: 100})

	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))

	require.Equal(t, []OpKind{OpFill, OpStroke, OpFill, OpStroke, OpFill}, opKinds(rec.Ops))
	stroke, fill := rec.Ops[3], rec.Ops[4]
	assert.Equal(t, css.Black, stroke.Color, "stroke takes the top border color")
	assert.Equal(t, stroke.Shape, fill.Shape)
}

func TestPaint_TextAtBaseline(t *testing.T) {
	env := newPaintEnv(t)
	p := env.tree.AppendElement(env.tree.Root(), "p")
	env.box(p, layout.Box{X: 10, Y: 20, Width: 300, Height: 40})
	text := env.tree.AppendText(p, "hello")
	env.box(text, layout.Box{X: 2, Y: 3})

	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))

	last := rec.Ops[len(rec.Ops)-1]
	require.Equal(t, OpText, last.Kind)
	assert.Equal(t, "hello", last.Text)
	assert.Equal(t, 12.0, last.X, "text position accumulates ancestor offsets")
	assert.Equal(t, 39.0, last.Y, "baseline sits one font size below the box top")
	assert.Equal(t, env.cfg.DefaultFontSize, last.Size)
}

func TestPaint_DocumentOrder(t *testing.T) {
	env := newPaintEnv(t)
	first := env.tree.AppendElement(env.tree.Root(), "div")
	env.box(first, layout.Box{Width: 100, Height: 20})
	env.box(env.tree.AppendText(first, "one"), layout.Box{})
	second := env.tree.AppendElement(env.tree.Root(), "div")
	env.box(second, layout.Box{Y: 20, Width: 100, Height: 20})
	env.box(env.tree.AppendText(second, "two"), layout.Box{})

	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))

	var texts []string
	for _, op := range rec.Ops {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	assert.Equal(t, []string{"one", "two"}, texts)
}

func TestPaint_PlaceholderPaintsNothing(t *testing.T) {
	env := newPaintEnv(t)
	ph := env.tree.AppendPlaceholder(env.tree.Root())
	env.box(ph, layout.Box{Width: 50, Height: 50})

	rec := &Recorder{}
	require.NoError(t, Paint(env.tree, env.store, env.layouts, rec, env.cfg))
	assert.Len(t, rec.Ops, 3, "only the page and root element paint")
}

func TestPaint_MissingLayoutIsFatal(t *testing.T) {
	env := newPaintEnv(t)
	env.tree.AppendElement(env.tree.Root(), "div") // no box registered

	rec := &Recorder{}
	err := Paint(env.tree, env.store, env.layouts, rec, env.cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrMissingLayout)
}

func TestAbsolutePosition(t *testing.T) {
	env := newPaintEnv(t)
	a := env.tree.AppendElement(env.tree.Root(), "div")
	env.box(a, layout.Box{X: 5, Y: 5, Width: 100, Height: 100})
	b := env.tree.AppendElement(a, "div")
	env.box(b, layout.Box{X: 5, Y: 5, Width: 80, Height: 80})
	c := env.tree.AppendElement(b, "div")
	env.box(c, layout.Box{X: 5, Y: 5, Width: 60, Height: 60})

	pos, err := AbsolutePosition(env.tree, env.store, env.layouts, c)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 15, Y: 15}, pos, "offsets accumulate below the root sentinel")

	pos, err = AbsolutePosition(env.tree, env.store, env.layouts, a)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 5, Y: 5}, pos)
}

func TestAbsolutePosition_MissingAncestorLayout(t *testing.T) {
	env := newPaintEnv(t)
	a := env.tree.AppendElement(env.tree.Root(), "div") // no box
	b := env.tree.AppendElement(a, "div")
	env.box(b, layout.Box{X: 5, Y: 5})

	_, err := AbsolutePosition(env.tree, env.store, env.layouts, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrMissingLayout)
}
