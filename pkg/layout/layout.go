// Package layout defines the interface to the external box-layout engine:
// an opaque handle per node and a handle-keyed box query. The real sizing
// algorithm lives outside this module; the Store here is the handle table,
// and stack.go provides a deliberately small layout used by the demo binary
// and the walker tests.
package layout

import (
	"errors"
	"fmt"
)

// ErrMissingLayout reports a node that should have a layout handle or box
// but does not. Every visible node must be laid out before paint; a gap is
// an integration error, not a recoverable condition.
var ErrMissingLayout = errors.New("missing layout node")

// Handle is an opaque key into a layout source.
type Handle int

// Box is a resolved position and size. Position is relative to the parent
// box's origin.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Source answers handle-keyed box queries.
type Source interface {
	Layout(h Handle) (Box, error)
}

// Store is a plain in-memory layout source.
type Store struct {
	boxes []Box
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Insert registers a box and returns its handle.
func (s *Store) Insert(b Box) Handle {
	s.boxes = append(s.boxes, b)
	return Handle(len(s.boxes) - 1)
}

// Set overwrites the box for an existing handle.
func (s *Store) Set(h Handle, b Box) error {
	if int(h) < 0 || int(h) >= len(s.boxes) {
		return fmt.Errorf("%w: handle %d", ErrMissingLayout, h)
	}
	s.boxes[h] = b
	return nil
}

// Layout returns the box for a handle.
func (s *Store) Layout(h Handle) (Box, error) {
	if int(h) < 0 || int(h) >= len(s.boxes) {
		return Box{}, fmt.Errorf("%w: handle %d", ErrMissingLayout, h)
	}
	return s.boxes[h], nil
}
