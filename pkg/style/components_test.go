package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vermeer/pkg/css"
	"vermeer/pkg/layout"
)

func TestBackground_DefaultIsTransparent(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	require.NoError(t, sched.Flush())
	assert.Equal(t, 0.0, store.Background(n.ID).Color.A)
}

func TestBackground_FromAttribute(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	n.SetAttribute("background-color", "navy")
	require.NoError(t, sched.Flush())
	assert.Equal(t, css.Color{B: 128, A: 1.0}, store.Background(n.ID).Color)

	sched.SetAttribute(n, "background-color", "#ff0000")
	require.NoError(t, sched.Flush())
	assert.Equal(t, css.Color{R: 255, A: 1.0}, store.Background(n.ID).Color)
}

func TestForeground_DefaultIsBlack(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "p")
	require.NoError(t, sched.Flush())
	assert.Equal(t, css.Black, store.Foreground(n.ID).Color)
}

func TestForeground_FromAttribute(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "p")
	n.SetAttribute("color", "rgba(10, 20, 30, 0.5)")
	require.NoError(t, sched.Flush())
	assert.Equal(t, css.Color{R: 10, G: 20, B: 30, A: 0.5}, store.Foreground(n.ID).Color)
}

func TestBorder_Defaults(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	require.NoError(t, sched.Flush())

	b := store.Border(n.ID)
	assert.Equal(t, css.Black, b.Colors.Top)
	// zero-value widths are medium
	ctx := css.NewContext(100, 16, css.Size{Width: 800, Height: 600})
	w, err := b.Widths.Top.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
	assert.Nil(t, b.Radius.TopLeft)
}

func TestBorder_UniformThenLonghand(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	n.SetAttribute("border-color", "teal")
	n.SetAttribute("border-width", "thin")
	n.SetAttribute("border-top-color", "red")
	n.SetAttribute("border-left-width", "8px")

	require.NoError(t, sched.Flush())
	b := store.Border(n.ID)
	teal := css.Color{G: 128, B: 128, A: 1.0}
	assert.Equal(t, css.Color{R: 255, A: 1.0}, b.Colors.Top, "edge longhand overrides the uniform color")
	assert.Equal(t, teal, b.Colors.Right)
	assert.Equal(t, teal, b.Colors.Bottom)

	ctx := css.NewContext(100, 16, css.Size{Width: 800, Height: 600})
	top, err := b.Widths.Top.Resolve(ctx)
	require.NoError(t, err)
	left, err := b.Widths.Left.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, top)
	assert.Equal(t, 8.0, left, "edge longhand overrides the uniform width")
}

func TestBorder_Radius(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	n.SetAttribute("border-radius", "calc(8px + 2px)")
	n.SetAttribute("border-bottom-right-radius", "50%")

	require.NoError(t, sched.Flush())
	b := store.Border(n.ID)
	ctx := css.NewContext(100, 16, css.Size{Width: 800, Height: 600})
	tl, err := b.Radius.TopLeft.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, tl)
	br, err := b.Radius.BottomRight.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, br, "percentage radius resolves against the container")
}

func TestBorder_UnparseableKeepsDefault(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "div")
	n.SetAttribute("border-color", "plaid")
	require.NoError(t, sched.Flush())
	assert.Equal(t, css.Black, store.Border(n.ID).Colors.Top)
}

func TestStore_FocusAndLayoutHandles(t *testing.T) {
	tree, store, _ := newEnv(t)
	n := tree.AppendElement(tree.Root(), "button")

	assert.False(t, store.Focused(n.ID))
	store.SetFocused(n.ID, true)
	assert.True(t, store.Focused(n.ID))
	store.SetFocused(n.ID, false)
	assert.False(t, store.Focused(n.ID))

	if _, ok := store.LayoutNode(n.ID); ok {
		t.Fatal("fresh node must have no layout handle")
	}
	store.SetLayoutNode(n.ID, layout.Handle(7))
	h, ok := store.LayoutNode(n.ID)
	require.True(t, ok)
	assert.Equal(t, layout.Handle(7), h)
}
