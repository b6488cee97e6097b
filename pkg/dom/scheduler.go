package dom

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrUnhandledAttribute reports a pass whose watched-attribute set and
// dispatch table fell out of lockstep. This is a maintenance bug, never a
// runtime condition.
var ErrUnhandledAttribute = errors.New("attribute watched but not handled")

// Dependency is the shape of a pass's dependence on neighboring records.
type Dependency int

const (
	// DepNone recomputes from the node's own attributes only.
	DepNone Dependency = iota
	// DepParent additionally recomputes when the parent's record for the
	// same pass changed, and requires parents to settle before children.
	DepParent
)

// PassSpec declares what triggers a pass.
type PassSpec struct {
	Name string
	// Attributes is the watched set; a change to any of these names
	// re-triggers the pass on that node.
	Attributes []string
	Dependency Dependency
}

// Pass is a unit of derived-style computation. Run recomputes the node's
// record wholesale and reports whether it differs from the previous value;
// an unchanged record suppresses downstream propagation.
type Pass interface {
	Spec() PassSpec
	Run(n *Node) (changed bool, err error)
}

// Scheduler tracks attribute dirtiness and drives passes over the tree in
// top-down order. It is single-threaded: Flush runs every due pass to
// completion before returning.
type Scheduler struct {
	tree   *Tree
	passes []Pass
	logger *log.Logger

	// dirty maps node -> set of touched attribute names since last Flush.
	dirty map[NodeID]map[string]struct{}
	// seen marks nodes whose records have been created; unseen nodes get
	// every pass run once regardless of dirtiness.
	seen map[NodeID]struct{}
}

// NewScheduler creates a scheduler over the tree. logger may be nil.
func NewScheduler(tree *Tree, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
		logger.SetLevel(log.FatalLevel)
	}
	return &Scheduler{
		tree:   tree,
		logger: logger,
		dirty:  make(map[NodeID]map[string]struct{}),
		seen:   make(map[NodeID]struct{}),
	}
}

// Register adds a pass. Passes run in registration order on each node, so
// a pass reading another pass's record must be registered after it.
func (s *Scheduler) Register(p Pass) {
	s.passes = append(s.passes, p)
}

// Touch marks an attribute of a node as changed.
func (s *Scheduler) Touch(n *Node, attr string) {
	set, ok := s.dirty[n.ID]
	if !ok {
		set = make(map[string]struct{})
		s.dirty[n.ID] = set
	}
	set[attr] = struct{}{}
}

// SetAttribute mutates an attribute and marks it dirty in one step.
func (s *Scheduler) SetAttribute(n *Node, name, value string) {
	n.SetAttribute(name, value)
	s.Touch(n, name)
}

// Flush runs every due pass over the tree, parents strictly before
// children, and clears the dirty state. Propagation is short-circuited:
// a parent-dependent pass only re-runs on children when the parent's
// record actually changed.
func (s *Scheduler) Flush() error {
	if s.tree.Len() == 0 {
		return ErrNoRoot
	}
	// changed[i] holds the nodes whose record changed for pass i during
	// this flush, to trigger parent-dependent children.
	changed := make([]map[NodeID]struct{}, len(s.passes))
	for i := range changed {
		changed[i] = make(map[NodeID]struct{})
	}

	for _, n := range s.tree.TopDown() {
		_, fresh := s.seen[n.ID]
		fresh = !fresh
		for i, p := range s.passes {
			spec := p.Spec()
			if !s.due(n, spec, fresh, changed[i]) {
				continue
			}
			ch, err := p.Run(n)
			if err != nil {
				return fmt.Errorf("pass %s on node %d: %w", spec.Name, n.ID, err)
			}
			if ch {
				changed[i][n.ID] = struct{}{}
			}
			s.logger.Debug("pass ran", "pass", spec.Name, "node", n.ID, "changed", ch)
		}
		s.seen[n.ID] = struct{}{}
	}

	s.dirty = make(map[NodeID]map[string]struct{})
	return nil
}

func (s *Scheduler) due(n *Node, spec PassSpec, fresh bool, parentChanged map[NodeID]struct{}) bool {
	if fresh {
		return true
	}
	if set, ok := s.dirty[n.ID]; ok {
		for _, attr := range spec.Attributes {
			if _, touched := set[attr]; touched {
				return true
			}
		}
	}
	if spec.Dependency == DepParent && n.Parent != nil {
		if _, ok := parentChanged[n.Parent.ID]; ok {
			return true
		}
	}
	return false
}
