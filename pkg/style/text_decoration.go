package style

import (
	"reflect"

	"vermeer/pkg/css"
	"vermeer/pkg/dom"
)

// TextDecoration is the per-node decoration record. It does not inherit
// from the parent; the zero value (no lines, solid, auto thickness,
// zero-alpha color) is the default.
type TextDecoration struct {
	Line      css.DecorationLine
	Thickness css.DecorationThickness
	Style     css.DecorationStyle
	Color     css.Color
}

// Equal reports whether two decoration records are identical.
func (d TextDecoration) Equal(o TextDecoration) bool {
	return reflect.DeepEqual(d, o)
}

var decorationAttributes = []string{
	"text-decoration",
	"text-decoration-line",
	"text-decoration-color",
	"text-decoration-style",
	"text-decoration-thickness",
}

// TextDecorationPass recomputes the decoration record. The tag heuristic
// runs first (ins/u imply underline, del implies line-through), then
// attribute values override it: the shorthand overwrites all four fields
// wholesale, longhands overwrite their one field. Unparseable values are
// silently ignored, keeping whatever the heuristic stage produced.
type TextDecorationPass struct {
	store *Store
}

// NewTextDecorationPass creates the pass writing into store.
func NewTextDecorationPass(store *Store) *TextDecorationPass {
	return &TextDecorationPass{store: store}
}

// Spec declares the watched attributes.
func (p *TextDecorationPass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "text-decoration",
		Attributes: decorationAttributes,
		Dependency: dom.DepNone,
	}
}

// Run rebuilds the record. Attributes are visited shorthand first so the
// longhands win regardless of the order they were set in.
func (p *TextDecorationPass) Run(n *dom.Node) (bool, error) {
	var next TextDecoration

	if n.Kind == dom.ElementNode {
		switch n.Tag {
		case "ins", "u":
			next.Line |= css.DecorationUnderline
		case "del":
			next.Line |= css.DecorationLineThrough
		}
	}

	for _, name := range decorationAttributes {
		raw, ok := n.Attribute(name)
		if !ok {
			continue
		}
		switch name {
		case "text-decoration":
			if d, ok := css.ParseDecoration(raw); ok {
				next.Line = d.Line
				next.Style = d.Style
				next.Thickness = d.Thickness
				next.Color = d.Color
			}
		case "text-decoration-line":
			if line, ok := css.ParseDecorationLine(raw); ok {
				next.Line = line
			}
		case "text-decoration-color":
			if c, ok := css.ParseColor(raw); ok {
				next.Color = c
			}
		case "text-decoration-style":
			if s, ok := css.ParseDecorationStyle(raw); ok {
				next.Style = s
			}
		case "text-decoration-thickness":
			if th, ok := css.ParseDecorationThickness(raw); ok {
				next.Thickness = th
			}
		default:
			return false, dom.ErrUnhandledAttribute
		}
	}

	if next.Equal(p.store.Decoration(n.ID)) {
		return false, nil
	}
	p.store.decoration[n.ID] = next
	return true, nil
}
