// Package style owns the derived-style records computed per node: the
// cascaded font size, the composite font record, text decoration, and the
// background/foreground/border styles the paint walker consumes. Each
// record type has exactly one pass that writes it; records are replaced
// wholesale and compared against their previous value so the scheduler can
// stop propagating unchanged results.
package style

import (
	"vermeer/pkg/config"
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
	"vermeer/pkg/layout"
)

// Store is the arena of per-node derived records, keyed by NodeID. Absent
// entries read as the record type's default value.
type Store struct {
	cfg config.Config

	fontSize    map[dom.NodeID]float64
	font        map[dom.NodeID]Font
	decoration  map[dom.NodeID]TextDecoration
	background  map[dom.NodeID]Background
	foreground  map[dom.NodeID]Foreground
	border      map[dom.NodeID]Border
	focused     map[dom.NodeID]bool
	layoutNodes map[dom.NodeID]layout.Handle
}

// NewStore creates an empty store whose defaults come from cfg.
func NewStore(cfg config.Config) *Store {
	return &Store{
		cfg:         cfg,
		fontSize:    make(map[dom.NodeID]float64),
		font:        make(map[dom.NodeID]Font),
		decoration:  make(map[dom.NodeID]TextDecoration),
		background:  make(map[dom.NodeID]Background),
		foreground:  make(map[dom.NodeID]Foreground),
		border:      make(map[dom.NodeID]Border),
		focused:     make(map[dom.NodeID]bool),
		layoutNodes: make(map[dom.NodeID]layout.Handle),
	}
}

// Config returns the configuration the store was built with.
func (s *Store) Config() config.Config {
	return s.cfg
}

// FontSize returns the node's computed font size, defaulting to the
// configured engine default.
func (s *Store) FontSize(id dom.NodeID) float64 {
	if v, ok := s.fontSize[id]; ok {
		return v
	}
	return s.cfg.DefaultFontSize
}

// Font returns the node's composite font record.
func (s *Store) Font(id dom.NodeID) Font {
	if v, ok := s.font[id]; ok {
		return v
	}
	return DefaultFont(s.cfg)
}

// Decoration returns the node's text-decoration record.
func (s *Store) Decoration(id dom.NodeID) TextDecoration {
	return s.decoration[id]
}

// Background returns the node's background record; the default is fully
// transparent.
func (s *Store) Background(id dom.NodeID) Background {
	return s.background[id]
}

// Foreground returns the node's foreground record, defaulting to black.
func (s *Store) Foreground(id dom.NodeID) Foreground {
	if v, ok := s.foreground[id]; ok {
		return v
	}
	return Foreground{Color: css.Black}
}

// Border returns the node's border record.
func (s *Store) Border(id dom.NodeID) Border {
	if v, ok := s.border[id]; ok {
		return v
	}
	return DefaultBorder()
}

// Focused reports whether the node currently holds focus.
func (s *Store) Focused(id dom.NodeID) bool {
	return s.focused[id]
}

// SetFocused records the focus flag; it is owned by the embedder, not by
// any pass.
func (s *Store) SetFocused(id dom.NodeID, focused bool) {
	s.focused[id] = focused
}

// LayoutNode returns the node's layout handle.
func (s *Store) LayoutNode(id dom.NodeID) (layout.Handle, bool) {
	h, ok := s.layoutNodes[id]
	return h, ok
}

// SetLayoutNode attaches a layout handle to a node.
func (s *Store) SetLayoutNode(id dom.NodeID, h layout.Handle) {
	s.layoutNodes[id] = h
}
