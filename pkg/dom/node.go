// Package dom holds the retained node tree and the attribute-watched pass
// scheduler that drives incremental style recomputation. Derived-style
// records themselves live in the style package; this package only knows
// which passes exist, which attribute names each one watches, and in what
// order nodes must be visited.
package dom

import "errors"

// ErrNoRoot reports a tree without a usable root node. The tree always
// creates one, so seeing this means the integration is malformed.
var ErrNoRoot = errors.New("tree has no root node")

// NodeID is a stable identifier for a node, usable as an arena key for
// per-node derived records.
type NodeID int

// Kind discriminates node flavors.
type Kind int

const (
	// ElementNode has a tag, attributes and children.
	ElementNode Kind = iota
	// TextNode is a text leaf.
	TextNode
	// PlaceholderNode occupies a slot in the tree but paints nothing.
	PlaceholderNode
)

// Node is an element in the retained UI tree.
type Node struct {
	ID         NodeID
	Kind       Kind
	Tag        string
	Text       string
	Attributes map[string]string
	Parent     *Node
	Children   []*Node
}

// Attribute returns the raw value of the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[name]
	return v, ok
}

// SetAttribute stores a raw attribute value. It does not mark anything
// dirty; use Scheduler.SetAttribute for tracked mutations.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// Tree is an arena of nodes rooted at a synthetic document element. The
// root acts as the sentinel for absolute-position accumulation: ancestor
// offsets are summed up to, but not including, it.
type Tree struct {
	nodes []*Node
}

// NewTree creates a tree containing only the root element.
func NewTree() *Tree {
	t := &Tree{}
	t.newNode(ElementNode, "document")
	return t
}

// Root returns the root sentinel element.
func (t *Tree) Root() *Node {
	return t.nodes[0]
}

// Get returns the node with the given id, or nil.
func (t *Tree) Get(id NodeID) *Node {
	if int(id) < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) newNode(kind Kind, tag string) *Node {
	n := &Node{
		ID:   NodeID(len(t.nodes)),
		Kind: kind,
		Tag:  tag,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// AppendElement creates an element node with the given tag under parent.
func (t *Tree) AppendElement(parent *Node, tag string) *Node {
	n := t.newNode(ElementNode, tag)
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// AppendText creates a text leaf under parent.
func (t *Tree) AppendText(parent *Node, text string) *Node {
	n := t.newNode(TextNode, "")
	n.Text = text
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// AppendPlaceholder creates a placeholder node under parent.
func (t *Tree) AppendPlaceholder(parent *Node) *Node {
	n := t.newNode(PlaceholderNode, "")
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// Walk visits every node top-down in document order, parents before
// children, using an explicit stack so arbitrarily deep trees cannot
// exhaust the call stack.
func (t *Tree) Walk(visit func(n *Node) error) error {
	if len(t.nodes) == 0 {
		return ErrNoRoot
	}
	stack := []*Node{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := visit(n); err != nil {
			return err
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

// TopDown returns every node in an order where each parent precedes all of
// its descendants. Passes with a parent dependency rely on this ordering.
func (t *Tree) TopDown() []*Node {
	order := make([]*Node, 0, len(t.nodes))
	queue := []*Node{t.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		queue = append(queue, n.Children...)
	}
	return order
}
