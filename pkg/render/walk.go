package render

import (
	"fmt"

	"vermeer/pkg/config"
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
	"vermeer/pkg/layout"
	"vermeer/pkg/style"
)

// Paint walks the laid-out tree once, top to bottom in document order, and
// emits paint commands to the scene. Parents paint before their children,
// so children draw over parent backgrounds. The traversal uses an explicit
// stack so very deep trees cannot exhaust the call stack.
func Paint(t *dom.Tree, st *style.Store, layouts layout.Source, scene Scene, cfg config.Config) error {
	root := t.Root()
	rootBox, err := nodeBox(st, layouts, root)
	if err != nil {
		return err
	}
	// the page itself
	scene.Fill(Rect(rootBox.X, rootBox.Y, rootBox.Width, rootBox.Height), css.White)

	type frame struct {
		node *dom.Node
		pos  Point
	}
	stack := []frame{{node: root, pos: Point{}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		box, err := nodeBox(st, layouts, f.node)
		if err != nil {
			return err
		}
		pos := Point{X: f.pos.X + box.X, Y: f.pos.Y + box.Y}

		switch f.node.Kind {
		case dom.TextNode:
			// text runs use the engine default size rather than the
			// node's computed font; see DESIGN.md
			size := cfg.DefaultFontSize
			color := st.Foreground(f.node.ID).Color
			scene.Text(pos.X, pos.Y+size, size, color, f.node.Text)

		case dom.ElementNode:
			if err := paintElement(f.node, box, pos, st, scene, cfg); err != nil {
				return err
			}
			for i := len(f.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: f.node.Children[i], pos: pos})
			}

		default:
			// placeholders and friends paint nothing
		}
	}
	return nil
}

func paintElement(n *dom.Node, box layout.Box, pos Point, st *style.Store, scene Scene, cfg config.Config) error {
	focused := st.Focused(n.ID)
	fontSize := st.FontSize(n.ID)
	border := st.Border(n.ID)

	shape, err := ResolveShape(box, border, pos, fontSize, cfg, focused)
	if err != nil {
		return fmt.Errorf("shaping node %d: %w", n.ID, err)
	}
	background := st.Background(n.ID).Color

	if focused {
		// double-ring focus indicator: a white ring on the full
		// geometry, a black ring over it, then the background filled
		// inside the ring
		ringWidth := cfg.FocusRingWidth / 2
		scene.Stroke(shape, ringWidth, css.White)
		scene.Stroke(shape, ringWidth, css.Black)
		scene.Fill(shape.Inset(cfg.FocusRingWidth/2), background)
		return nil
	}

	ctx := cfg.Context(css.AxisSize(css.AxisMin, css.Size{Width: box.Width, Height: box.Height}), fontSize)
	strokeWidth, err := border.Widths.Top.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("border width of node %d: %w", n.ID, err)
	}
	scene.Stroke(shape, strokeWidth, border.Colors.Top)
	scene.Fill(shape, background)
	return nil
}

// AbsolutePosition returns the node's position on the drawing surface:
// its own layout offset plus those of every ancestor below the root
// sentinel. An ancestor without a layout handle is a fatal integration
// error.
func AbsolutePosition(t *dom.Tree, st *style.Store, layouts layout.Source, n *dom.Node) (Point, error) {
	box, err := nodeBox(st, layouts, n)
	if err != nil {
		return Point{}, err
	}
	pos := Point{X: box.X, Y: box.Y}
	for p := n.Parent; p != nil && p != t.Root(); p = p.Parent {
		box, err := nodeBox(st, layouts, p)
		if err != nil {
			return Point{}, err
		}
		pos.X += box.X
		pos.Y += box.Y
	}
	return pos, nil
}

func nodeBox(st *style.Store, layouts layout.Source, n *dom.Node) (layout.Box, error) {
	h, ok := st.LayoutNode(n.ID)
	if !ok {
		return layout.Box{}, fmt.Errorf("%w: node %d", layout.ErrMissingLayout, n.ID)
	}
	return layouts.Layout(h)
}
