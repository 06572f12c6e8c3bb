package grid

import "github.com/katalvlaran/gridcore/coord"

// Grid is the uniform capability over both storage backends. T keys the
// coordinate space; V is the stored cell value (comparable so Matches
// can test value equality).
//
// Both backends implement every method in the same spirit; semantic
// differences forced by the storage strategy (observable absence, Remove
// on a dense grid) are documented on the concrete types.
type Grid[T coord.Number, V comparable] interface {
	// Insert writes v at key, overwriting any prior value.
	// Returns ErrOutOfBounds when key fails the backend's bounds; a
	// failed insert mutates nothing.
	Insert(key coord.Coord[T], v V) error

	// InsertOrIgnore writes v at key only if the key holds no value yet;
	// an occupied key is preserved (no-op, not an error). Returns
	// ErrOutOfBounds as Insert does.
	InsertOrIgnore(key coord.Coord[T], v V) error

	// Get returns the value at key. Absence and out-of-bounds are
	// indistinguishable: both report ok=false.
	Get(key coord.Coord[T]) (V, bool)

	// Remove deletes the value at key and returns it. Only meaningful
	// where absence is representable; see LinearGrid.Remove for the
	// dense semantics.
	Remove(key coord.Coord[T]) (V, bool)

	// ContainsKey reports whether key is in bounds and holds a value.
	ContainsKey(key coord.Coord[T]) bool

	// Clear removes all entries (HashGrid) or resets every cell to the
	// fill value (LinearGrid); the backend remains usable.
	Clear()

	// Matches reports whether the value stored at key equals v. A key
	// holding no value does not match (false, nil); an out-of-bounds key
	// is an error.
	Matches(key coord.Coord[T], v V) (bool, error)

	// UpN returns the value stored step cells up (decreasing y) from c,
	// silently reporting ok=false when the shifted coordinate underflows
	// T or is out of bounds. Convenience for neighbor lookups.
	UpN(c coord.Coord[T], step T) (V, bool)

	// CheckBounds validates key against the backend's limits, wrapping
	// ErrOutOfBounds with the violated axis. HashGrid skips the check
	// entirely when built with WithoutBoundsCheck.
	CheckBounds(key coord.Coord[T]) error

	// Len returns the number of stored entries (HashGrid) or total cells
	// (LinearGrid).
	Len() int
}
