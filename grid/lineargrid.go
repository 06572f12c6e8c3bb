package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/gridcore/coord"
)

// LinearGrid is the dense backend: a contiguous row-major slice of
// width×height cells, each always holding a value. Absence is not
// representable, so Remove and Clear reset cells to the construction-time
// fill value. Bounds are intrinsic to the index computation and are
// therefore always checked. Not safe for concurrent use.
type LinearGrid[T coord.Number, V comparable] struct {
	data   []V
	width  int
	height int
	fill   V
}

// Compile-time conformance to the Grid contract.
var _ Grid[int, int] = (*LinearGrid[int, int])(nil)

// NewLinearGrid constructs a width×height grid with every cell set to
// fill. Returns ErrBadDimensions unless both dimensions are positive,
// their product fits in an int, and the maximum coordinate
// (width-1, height-1) is representable in T — otherwise cells past T's
// range would be unreachable and iteration would wrap into duplicate
// coordinates.
// Complexity: O(width×height).
func NewLinearGrid[T coord.Number, V comparable](width, height int, fill V) (*LinearGrid[T, V], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if width > math.MaxInt/height {
		return nil, ErrBadDimensions
	}
	if !fitsIn[T](width-1) || !fitsIn[T](height-1) {
		return nil, ErrBadDimensions
	}
	data := make([]V, width*height)
	for i := range data {
		data[i] = fill
	}
	return &LinearGrid[T, V]{
		data:   data,
		width:  width,
		height: height,
		fill:   fill,
	}, nil
}

// Width returns the configured number of columns.
func (g *LinearGrid[T, V]) Width() int { return g.width }

// Height returns the configured number of rows.
func (g *LinearGrid[T, V]) Height() int { return g.height }

// fitsIn reports whether the non-negative component value n round-trips
// the conversion to T, i.e. the coordinate (n, n) is representable.
func fitsIn[T coord.Number](n int) bool {
	v := T(n)
	if v < 0 {
		return false
	}
	return uint64(v) == uint64(n)
}

// toIndex converts one coordinate component to a non-negative int.
// Components that are negative or exceed the int range are out of
// bounds, never a crash.
func toIndex[T coord.Number](v T) (int, bool) {
	if v < 0 {
		return 0, false
	}
	u := uint64(v)
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}

// index maps key to its row-major offset y*width + x, reporting false
// when either component is negative, unrepresentable as an int, or past
// the grid dimensions.
// Complexity: O(1).
func (g *LinearGrid[T, V]) index(key coord.Coord[T]) (int, bool) {
	x, ok := toIndex(key.X)
	if !ok || x >= g.width {
		return 0, false
	}
	y, ok := toIndex(key.Y)
	if !ok || y >= g.height {
		return 0, false
	}
	return y*g.width + x, true
}

func (g *LinearGrid[T, V]) boundsErr(key coord.Coord[T]) error {
	return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, key, g.width, g.height)
}

// CheckBounds validates key against the grid dimensions. The check is
// the index computation itself, so it is unconditional.
// Complexity: O(1).
func (g *LinearGrid[T, V]) CheckBounds(key coord.Coord[T]) error {
	if _, ok := g.index(key); !ok {
		return g.boundsErr(key)
	}
	return nil
}

// Insert writes v at key. An out-of-bounds key is a hard ErrOutOfBounds
// failure and mutates nothing.
// Complexity: O(1).
func (g *LinearGrid[T, V]) Insert(key coord.Coord[T], v V) error {
	idx, ok := g.index(key)
	if !ok {
		return g.boundsErr(key)
	}
	g.data[idx] = v
	return nil
}

// InsertOrIgnore validates key and otherwise does nothing: every
// in-bounds cell always holds a value, so by the first-write-wins
// contract the existing value is preserved.
// Complexity: O(1).
func (g *LinearGrid[T, V]) InsertOrIgnore(key coord.Coord[T], _ V) error {
	if _, ok := g.index(key); !ok {
		return g.boundsErr(key)
	}
	return nil
}

// Get returns the value at key; ok=false only for out-of-bounds keys,
// since every in-bounds cell holds a value.
// Complexity: O(1).
func (g *LinearGrid[T, V]) Get(key coord.Coord[T]) (V, bool) {
	var zero V
	idx, ok := g.index(key)
	if !ok {
		return zero, false
	}
	return g.data[idx], true
}

// Remove resets the cell at key to the fill value and returns the prior
// value. The dense backend cannot represent absence, so the removed cell
// reads as the fill value afterward; ok=false only for out-of-bounds
// keys.
// Complexity: O(1).
func (g *LinearGrid[T, V]) Remove(key coord.Coord[T]) (V, bool) {
	var zero V
	idx, ok := g.index(key)
	if !ok {
		return zero, false
	}
	prior := g.data[idx]
	g.data[idx] = g.fill
	return prior, true
}

// ContainsKey reports whether key is in bounds; every in-bounds cell
// holds a value.
// Complexity: O(1).
func (g *LinearGrid[T, V]) ContainsKey(key coord.Coord[T]) bool {
	_, ok := g.index(key)
	return ok
}

// Clear resets every cell to the fill value; the grid remains usable.
// Complexity: O(width×height).
func (g *LinearGrid[T, V]) Clear() {
	for i := range g.data {
		g.data[i] = g.fill
	}
}

// Matches reports whether the value stored at key equals v; an
// out-of-bounds key is an error.
// Complexity: O(1).
func (g *LinearGrid[T, V]) Matches(key coord.Coord[T], v V) (bool, error) {
	idx, ok := g.index(key)
	if !ok {
		return false, g.boundsErr(key)
	}
	return g.data[idx] == v, nil
}

// UpN returns the value stored step cells up from c, silently reporting
// ok=false when the shifted coordinate underflows T or leaves the grid.
// Complexity: O(1).
func (g *LinearGrid[T, V]) UpN(c coord.Coord[T], step T) (V, bool) {
	var zero V
	shifted, ok := c.UpN(step, coord.Unbounded[T]())
	if !ok {
		return zero, false
	}
	return g.Get(shifted)
}

// Len returns the total number of cells, width×height.
// Complexity: O(1).
func (g *LinearGrid[T, V]) Len() int {
	return len(g.data)
}

// All yields every (coordinate, value) pair in ascending index order
// (row-major, top row first), inverting the index mapping: x = i mod
// width, y = i div width.
// Complexity: O(width×height).
func (g *LinearGrid[T, V]) All() iter.Seq2[coord.Coord[T], V] {
	return func(yield func(coord.Coord[T], V) bool) {
		for i, v := range g.data {
			key := coord.New(T(i%g.width), T(i/g.width))
			if !yield(key, v) {
				return
			}
		}
	}
}
