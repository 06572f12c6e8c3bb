// Package grid exposes one Grid capability behind two interchangeable
// storage backends, keyed by coord.Coord.
//
// What:
//
//   - Grid[T, V] is the shared contract: bounded insert, lookup, removal,
//     membership, clearing, value matching, and "look n cells up".
//   - HashGrid is the sparse associative backend: a map from coordinate
//     to value with four independently optional axis bounds. Absence is
//     observable — a key either holds a value or it does not.
//   - LinearGrid is the dense backend: a contiguous row-major slice of
//     width×height cells, every one always holding a value. Absence is
//     not representable; bounds are intrinsic to the index computation.
//
// Why:
//
//   - Sparse worlds (scattered entities on a huge plane) want the map;
//     saturated boards (pixels, puzzle cells) want the slice. Algorithms
//     written against Grid run on either.
//
// Choosing a backend is a density/memory trade-off; everything after
// construction goes through the shared contract.
//
// Bounds checking — read this before disabling it:
//
//	HashGrid validates keys against its configured bounds on every
//	access by default (the "debug" profile). Constructing with
//	WithoutBoundsCheck() skips the validation entirely (the "release"
//	profile): out-of-range keys are then silently accepted and stored.
//	This is a deliberate performance opt-in that trades correctness
//	enforcement for speed, not a defect; both modes are plain runtime
//	configuration so both are testable. LinearGrid always validates,
//	because its bounds check is the index computation itself.
//
// Complexity: every operation is O(1) (amortized for map access) except
// Clear and All, which are linear in the backend size, and HashGrid.All,
// which sorts keys for deterministic order.
//
// Errors:
//
//   - ErrOutOfBounds: coordinate outside configured/intrinsic limits.
//   - ErrBadDimensions: non-positive LinearGrid width or height.
package grid
