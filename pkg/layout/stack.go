package layout

import (
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
)

// Sink receives the handle assigned to each node.
type Sink interface {
	SetLayoutNode(id dom.NodeID, h Handle)
}

// Stack is a stand-in for the external box-layout engine: it stacks each
// element's children vertically, sizing elements from their width/height
// attributes (resolved against the parent box) or from their content. It
// exists so the demo binary and the walker tests have real boxes to paint;
// it makes no attempt at CSS-correct sizing.
func Stack(t *dom.Tree, sink Sink, viewport css.Size, fontSize float64) *Store {
	s := NewStore()
	root := t.Root()
	rootHandle := s.Insert(Box{Width: viewport.Width, Height: viewport.Height})
	sink.SetLayoutNode(root.ID, rootHandle)

	cursor := 0.0
	for _, child := range root.Children {
		cursor += place(s, sink, child, 0, cursor, viewport.Width, viewport, fontSize)
	}
	return s
}

// place lays out n at (x, y) relative to its parent and returns its height.
func place(s *Store, sink Sink, n *dom.Node, x, y, containerWidth float64, viewport css.Size, fontSize float64) float64 {
	switch n.Kind {
	case dom.TextNode:
		// rough glyph estimate, good enough for a stand-in
		width := float64(len(n.Text)) * fontSize * 0.6
		height := fontSize * 1.2
		sink.SetLayoutNode(n.ID, s.Insert(Box{X: x, Y: y, Width: width, Height: height}))
		return height

	case dom.ElementNode:
		width := attrLength(n, "width", containerWidth, viewport, fontSize, containerWidth)
		handle := s.Insert(Box{})
		sink.SetLayoutNode(n.ID, handle)

		content := 0.0
		for _, child := range n.Children {
			content += place(s, sink, child, 0, content, width, viewport, fontSize)
		}
		height := attrLength(n, "height", containerWidth, viewport, fontSize, content)

		// handle already registered above, Set cannot fail
		_ = s.Set(handle, Box{X: x, Y: y, Width: width, Height: height})
		return height

	default:
		sink.SetLayoutNode(n.ID, s.Insert(Box{X: x, Y: y}))
		return 0
	}
}

func attrLength(n *dom.Node, name string, container float64, viewport css.Size, fontSize float64, fallback float64) float64 {
	raw, ok := n.Attribute(name)
	if !ok {
		return fallback
	}
	l, ok := css.ParseLength(raw)
	if !ok {
		return fallback
	}
	ctx := css.NewContext(container, fontSize, viewport)
	v, err := l.Resolve(ctx)
	if err != nil {
		return fallback
	}
	return v
}
