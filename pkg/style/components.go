package style

import (
	"reflect"

	"vermeer/pkg/css"
	"vermeer/pkg/dom"
)

// Background is the per-node background record. The zero value is fully
// transparent.
type Background struct {
	Color css.Color
}

// Foreground is the per-node text color record.
type Foreground struct {
	Color css.Color
}

// BorderColors holds one color per edge.
type BorderColors struct {
	Top, Right, Bottom, Left css.Color
}

// BorderWidths holds one width per edge.
type BorderWidths struct {
	Top, Right, Bottom, Left css.BorderSideWidth
}

// BorderRadius holds one radius per corner. A nil length is a zero radius.
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft css.Length
}

// Border is the per-node border record consumed by the geometry resolver.
type Border struct {
	Colors BorderColors
	Widths BorderWidths
	Radius BorderRadius
}

// DefaultBorder has black medium edges and square corners.
func DefaultBorder() Border {
	return Border{
		Colors: BorderColors{
			Top:    css.Black,
			Right:  css.Black,
			Bottom: css.Black,
			Left:   css.Black,
		},
	}
}

// Equal reports whether two border records are identical.
func (b Border) Equal(o Border) bool {
	return reflect.DeepEqual(b, o)
}

// BackgroundPass watches background-color.
type BackgroundPass struct {
	store *Store
}

// NewBackgroundPass creates the pass writing into store.
func NewBackgroundPass(store *Store) *BackgroundPass {
	return &BackgroundPass{store: store}
}

// Spec declares the watched attribute.
func (p *BackgroundPass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "background",
		Attributes: []string{"background-color"},
		Dependency: dom.DepNone,
	}
}

// Run rebuilds the record from the attribute, or the transparent default.
func (p *BackgroundPass) Run(n *dom.Node) (bool, error) {
	var next Background
	if raw, ok := n.Attribute("background-color"); ok {
		if c, ok := css.ParseColor(raw); ok {
			next.Color = c
		}
	}
	if next == p.store.Background(n.ID) {
		return false, nil
	}
	p.store.background[n.ID] = next
	return true, nil
}

// ForegroundPass watches color.
type ForegroundPass struct {
	store *Store
}

// NewForegroundPass creates the pass writing into store.
func NewForegroundPass(store *Store) *ForegroundPass {
	return &ForegroundPass{store: store}
}

// Spec declares the watched attribute.
func (p *ForegroundPass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "foreground",
		Attributes: []string{"color"},
		Dependency: dom.DepNone,
	}
}

// Run rebuilds the record from the attribute, defaulting to black.
func (p *ForegroundPass) Run(n *dom.Node) (bool, error) {
	next := Foreground{Color: css.Black}
	if raw, ok := n.Attribute("color"); ok {
		if c, ok := css.ParseColor(raw); ok {
			next.Color = c
		}
	}
	if next == p.store.Foreground(n.ID) {
		return false, nil
	}
	p.store.foreground[n.ID] = next
	return true, nil
}

var borderAttributes = []string{
	"border-color",
	"border-width",
	"border-radius",
	"border-top-color",
	"border-right-color",
	"border-bottom-color",
	"border-left-color",
	"border-top-width",
	"border-right-width",
	"border-bottom-width",
	"border-left-width",
	"border-top-left-radius",
	"border-top-right-radius",
	"border-bottom-right-radius",
	"border-bottom-left-radius",
}

// BorderPass recomputes the border record: the uniform border-color/
// border-width/border-radius attributes apply to all edges or corners,
// then per-edge and per-corner longhands override.
type BorderPass struct {
	store *Store
}

// NewBorderPass creates the pass writing into store.
func NewBorderPass(store *Store) *BorderPass {
	return &BorderPass{store: store}
}

// Spec declares the watched attributes.
func (p *BorderPass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "border",
		Attributes: borderAttributes,
		Dependency: dom.DepNone,
	}
}

// Run rebuilds the record. Unparseable values keep the default for that
// field.
func (p *BorderPass) Run(n *dom.Node) (bool, error) {
	next := DefaultBorder()

	for _, name := range borderAttributes {
		raw, ok := n.Attribute(name)
		if !ok {
			continue
		}
		switch name {
		case "border-color":
			if c, ok := css.ParseColor(raw); ok {
				next.Colors = BorderColors{Top: c, Right: c, Bottom: c, Left: c}
			}
		case "border-width":
			if w, ok := css.ParseBorderSideWidth(raw); ok {
				next.Widths = BorderWidths{Top: w, Right: w, Bottom: w, Left: w}
			}
		case "border-radius":
			if l, ok := css.ParseLength(raw); ok {
				next.Radius = BorderRadius{TopLeft: l, TopRight: l, BottomRight: l, BottomLeft: l}
			}
		case "border-top-color":
			setColor(raw, &next.Colors.Top)
		case "border-right-color":
			setColor(raw, &next.Colors.Right)
		case "border-bottom-color":
			setColor(raw, &next.Colors.Bottom)
		case "border-left-color":
			setColor(raw, &next.Colors.Left)
		case "border-top-width":
			setWidth(raw, &next.Widths.Top)
		case "border-right-width":
			setWidth(raw, &next.Widths.Right)
		case "border-bottom-width":
			setWidth(raw, &next.Widths.Bottom)
		case "border-left-width":
			setWidth(raw, &next.Widths.Left)
		case "border-top-left-radius":
			setRadius(raw, &next.Radius.TopLeft)
		case "border-top-right-radius":
			setRadius(raw, &next.Radius.TopRight)
		case "border-bottom-right-radius":
			setRadius(raw, &next.Radius.BottomRight)
		case "border-bottom-left-radius":
			setRadius(raw, &next.Radius.BottomLeft)
		default:
			return false, dom.ErrUnhandledAttribute
		}
	}

	if next.Equal(p.store.Border(n.ID)) {
		return false, nil
	}
	p.store.border[n.ID] = next
	return true, nil
}

func setColor(raw string, dst *css.Color) {
	if c, ok := css.ParseColor(raw); ok {
		*dst = c
	}
}

func setWidth(raw string, dst *css.BorderSideWidth) {
	if w, ok := css.ParseBorderSideWidth(raw); ok {
		*dst = w
	}
}

func setRadius(raw string, dst *css.Length) {
	if l, ok := css.ParseLength(raw); ok {
		*dst = l
	}
}

// RegisterPasses wires every style pass into the scheduler in dependency
// order: the font-size cascade first, since the font pass reads its
// output.
func RegisterPasses(s *dom.Scheduler, store *Store) {
	s.Register(NewFontSizePass(store))
	s.Register(NewFontPass(store))
	s.Register(NewTextDecorationPass(store))
	s.Register(NewBackgroundPass(store))
	s.Register(NewForegroundPass(store))
	s.Register(NewBorderPass(store))
}
