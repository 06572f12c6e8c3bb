package grid

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/gridcore/coord"
)

// HashGrid is the sparse associative backend: a map from coordinate to
// value plus four independently optional axis bounds. Absence is
// observable, so Remove, ContainsKey and InsertOrIgnore carry their full
// meaning here. Not safe for concurrent use; callers needing shared
// access must synchronize externally.
type HashGrid[T coord.Number, V comparable] struct {
	data map[coord.Coord[T]]V
	opts options[T]
}

// Compile-time conformance to the Grid contract.
var _ Grid[int, int] = (*HashGrid[int, int])(nil)

// NewHashGrid constructs an empty sparse grid. Axis bounds and the
// bounds-check profile are fixed at construction via options; tightening
// bounds after entries exist requires reconstruction.
// Complexity: O(len(opts)).
func NewHashGrid[T coord.Number, V comparable](opts ...Option[T]) *HashGrid[T, V] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &HashGrid[T, V]{
		data: make(map[coord.Coord[T]]V),
		opts: o,
	}
}

// CheckBounds validates key against the configured axis limits, wrapping
// ErrOutOfBounds with the violated axis. With bounds checking disabled
// (WithoutBoundsCheck) it always succeeds.
// Complexity: O(1).
func (g *HashGrid[T, V]) CheckBounds(key coord.Coord[T]) error {
	if !g.opts.boundsCheck {
		return nil
	}
	if lo, set := g.opts.minX.Get(); set && key.X < lo {
		return fmt.Errorf("%w: x %d below min %d", ErrOutOfBounds, key.X, lo)
	}
	if hi, set := g.opts.maxX.Get(); set && key.X > hi {
		return fmt.Errorf("%w: x %d above max %d", ErrOutOfBounds, key.X, hi)
	}
	if lo, set := g.opts.minY.Get(); set && key.Y < lo {
		return fmt.Errorf("%w: y %d below min %d", ErrOutOfBounds, key.Y, lo)
	}
	if hi, set := g.opts.maxY.Get(); set && key.Y > hi {
		return fmt.Errorf("%w: y %d above max %d", ErrOutOfBounds, key.Y, hi)
	}
	return nil
}

// Insert writes v at key, overwriting any prior value. A failed bounds
// check mutates nothing.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) Insert(key coord.Coord[T], v V) error {
	if err := g.CheckBounds(key); err != nil {
		return err
	}
	g.data[key] = v
	return nil
}

// InsertOrIgnore writes v at key unless the key already holds a value;
// first write wins and an occupied key is a silent no-op.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) InsertOrIgnore(key coord.Coord[T], v V) error {
	if err := g.CheckBounds(key); err != nil {
		return err
	}
	if _, occupied := g.data[key]; !occupied {
		g.data[key] = v
	}
	return nil
}

// Get returns the value at key. Absence and out-of-bounds both report
// ok=false.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) Get(key coord.Coord[T]) (V, bool) {
	var zero V
	if g.CheckBounds(key) != nil {
		return zero, false
	}
	v, ok := g.data[key]
	return v, ok
}

// Remove deletes and returns the value at key; ok=false when the key is
// out of bounds or holds no value.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) Remove(key coord.Coord[T]) (V, bool) {
	var zero V
	if g.CheckBounds(key) != nil {
		return zero, false
	}
	v, ok := g.data[key]
	if !ok {
		return zero, false
	}
	delete(g.data, key)
	return v, true
}

// ContainsKey reports whether key is in bounds and currently holds a
// value.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) ContainsKey(key coord.Coord[T]) bool {
	if g.CheckBounds(key) != nil {
		return false
	}
	_, ok := g.data[key]
	return ok
}

// Clear removes all entries; the grid and its configuration remain
// usable.
// Complexity: O(n).
func (g *HashGrid[T, V]) Clear() {
	clear(g.data)
}

// Matches reports whether the value stored at key equals v. An absent
// key does not match (false, nil); an out-of-bounds key is an error.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) Matches(key coord.Coord[T], v V) (bool, error) {
	if err := g.CheckBounds(key); err != nil {
		return false, err
	}
	stored, ok := g.data[key]
	if !ok {
		return false, nil
	}
	return stored == v, nil
}

// UpN returns the value stored step cells up from c, silently reporting
// ok=false when the shifted coordinate underflows T or fails the bounds
// check.
// Complexity: O(1) amortized.
func (g *HashGrid[T, V]) UpN(c coord.Coord[T], step T) (V, bool) {
	var zero V
	shifted, ok := c.UpN(step, coord.Unbounded[T]())
	if !ok {
		return zero, false
	}
	return g.Get(shifted)
}

// Len returns the number of stored entries.
// Complexity: O(1).
func (g *HashGrid[T, V]) Len() int {
	return len(g.data)
}

// All iterates stored entries in ascending lexicographic key order. Keys
// are snapshotted and sorted up front, so iteration order is
// deterministic even though the backing map's is not.
// Complexity: O(n log n) setup, O(1) per step.
func (g *HashGrid[T, V]) All() iter.Seq2[coord.Coord[T], V] {
	return func(yield func(coord.Coord[T], V) bool) {
		keys := make([]coord.Coord[T], 0, len(g.data))
		for k := range g.data {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, coord.Coord[T].Compare)
		for _, k := range keys {
			if !yield(k, g.data[k]) {
				return
			}
		}
	}
}
