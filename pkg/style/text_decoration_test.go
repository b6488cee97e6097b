package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vermeer/pkg/css"
)

func TestTextDecoration_TagHeuristics(t *testing.T) {
	tree, store, sched := newEnv(t)
	ins := tree.AppendElement(tree.Root(), "ins")
	u := tree.AppendElement(tree.Root(), "u")
	del := tree.AppendElement(tree.Root(), "del")
	p := tree.AppendElement(tree.Root(), "p")

	require.NoError(t, sched.Flush())
	assert.True(t, store.Decoration(ins.ID).Line.Has(css.DecorationUnderline))
	assert.True(t, store.Decoration(u.ID).Line.Has(css.DecorationUnderline))
	assert.True(t, store.Decoration(del.ID).Line.Has(css.DecorationLineThrough))
	assert.Equal(t, css.DecorationNone, store.Decoration(p.ID).Line)
}

func TestTextDecoration_AttributeOverridesTag(t *testing.T) {
	tree, store, sched := newEnv(t)
	del := tree.AppendElement(tree.Root(), "del")
	del.SetAttribute("text-decoration-line", "underline")

	require.NoError(t, sched.Flush())
	d := store.Decoration(del.ID)
	assert.True(t, d.Line.Has(css.DecorationUnderline))
	assert.False(t, d.Line.Has(css.DecorationLineThrough), "the attribute replaces the tag default outright")
}

func TestTextDecoration_LonghandsWinOverShorthand(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "span")
	n.SetAttribute("text-decoration", "overline dotted blue")
	n.SetAttribute("text-decoration-color", "red")

	require.NoError(t, sched.Flush())
	d := store.Decoration(n.ID)
	assert.True(t, d.Line.Has(css.DecorationOverline))
	assert.Equal(t, css.DecorationDotted, d.Style)
	assert.Equal(t, css.Color{R: 255, A: 1.0}, d.Color, "the color longhand overrides the shorthand")
}

func TestTextDecoration_UnparseableIgnored(t *testing.T) {
	tree, store, sched := newEnv(t)
	ins := tree.AppendElement(tree.Root(), "ins")
	ins.SetAttribute("text-decoration-style", "squiggly")

	require.NoError(t, sched.Flush())
	d := store.Decoration(ins.ID)
	assert.True(t, d.Line.Has(css.DecorationUnderline), "heuristic survives an unparseable longhand")
	assert.Equal(t, css.DecorationSolid, d.Style)
}

func TestTextDecoration_NoChangeOnRerun(t *testing.T) {
	tree, store, sched := newEnv(t)
	n := tree.AppendElement(tree.Root(), "ins")
	require.NoError(t, sched.Flush())

	pass := NewTextDecorationPass(store)
	changed, err := pass.Run(n)
	require.NoError(t, err)
	assert.False(t, changed, "recomputing an identical record must report no change")
}

func TestTextDecoration_Thickness(t *testing.T) {
	tree, store, sched := newEnv(t)
	auto := tree.AppendElement(tree.Root(), "span")
	auto.SetAttribute("text-decoration-thickness", "auto")
	fromFont := tree.AppendElement(tree.Root(), "span")
	fromFont.SetAttribute("text-decoration-thickness", "from-font")
	length := tree.AppendElement(tree.Root(), "span")
	length.SetAttribute("text-decoration-thickness", "2px")

	require.NoError(t, sched.Flush())
	assert.Equal(t, css.DecorationThickness{}, store.Decoration(auto.ID).Thickness)
	assert.True(t, store.Decoration(fromFont.ID).Thickness.FromFont)
	assert.NotNil(t, store.Decoration(length.ID).Thickness.Length)
}
