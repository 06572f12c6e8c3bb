// Package coord defines the Number constraint, the Coord value type,
// and optional axis limits. See doc.go for the package overview.
package coord

import (
	"cmp"
	"fmt"
)

// Number is the set of scalar types usable as a coordinate component.
// Every member is a fixed-width integer kind, which natively supplies
// total ordering, equality, strict comparability (map-key hashing) and
// copy semantics; checked arithmetic comes from CheckedAdd/CheckedSub.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Coord is an immutable (X, Y) grid position. It is a plain value: two
// coordinates with equal components are interchangeable, and Coord[T] is
// strictly comparable, so it can be used directly as a map key.
type Coord[T Number] struct {
	X, Y T
}

// New constructs a coordinate from its components.
// Complexity: O(1).
func New[T Number](x, y T) Coord[T] {
	return Coord[T]{X: x, Y: y}
}

// XY returns both components as a pair.
// Complexity: O(1).
func (c Coord[T]) XY() (x, y T) {
	return c.X, c.Y
}

// String renders the coordinate as "(x,y)".
func (c Coord[T]) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Compare orders coordinates lexicographically on (X, Y): -1 when c sorts
// before o, 0 when equal, +1 when after. Suitable for slices.SortFunc.
// Complexity: O(1).
func (c Coord[T]) Compare(o Coord[T]) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// InRect reports whether c lies within the inclusive rectangle spanned by
// topLeft and bottomRight. Cheap region membership without a backend.
// Complexity: O(1).
func (c Coord[T]) InRect(topLeft, bottomRight Coord[T]) bool {
	return c.X >= topLeft.X && c.X <= bottomRight.X &&
		c.Y >= topLeft.Y && c.Y <= bottomRight.Y
}

// Bound is an optional inclusive limit on a single axis. The zero value
// is unbounded, so Bound fields and variables need no initialization to
// mean "no limit".
type Bound[T Number] struct {
	val T
	set bool
}

// At returns a Bound fixed at v.
func At[T Number](v T) Bound[T] {
	return Bound[T]{val: v, set: true}
}

// Unbounded returns a Bound that imposes no limit.
func Unbounded[T Number]() Bound[T] {
	return Bound[T]{}
}

// Get returns the limit value and whether one is set.
func (b Bound[T]) Get() (T, bool) {
	return b.val, b.set
}
