// Package coord provides the generic building blocks for 2-D grids:
// a numeric constraint, an immutable coordinate value type, and
// overflow-aware directional movement.
//
// What:
//
//   - Number constrains the scalar types usable as coordinate components
//     (any fixed-width integer kind, signed or unsigned).
//   - Coord[T] is an immutable (X, Y) pair; directional operations return
//     a fresh coordinate or report failure, never mutate in place.
//   - Bound[T] is an optional inclusive per-axis limit shared with the
//     grid backends.
//   - CheckedAdd / CheckedSub detect overflow instead of wrapping.
//
// Why:
//
//   - Pathfinding, simulation and puzzle solvers all need cheap, copyable
//     cell positions whose arithmetic cannot silently wrap at the edges
//     of the numeric domain.
//   - One coordinate type parameterized over T serves byte-sized puzzle
//     boards and int64 world maps alike.
//
// Orientation follows the screen convention: y grows downward, so Up
// decrements Y and Down increments it.
//
// Failure model:
//
//   - Every move that can cross a limit or exhaust the numeric domain
//     returns (Coord[T], bool) with ok=false; no sentinel coordinates.
//   - Only the in-place Move* convenience family panics on failure:
//     calling a bare Move asserts the caller already knows it is safe.
//
// Complexity: every operation is O(1) except Collinear and UDLR, which
// are linear in their input size.
package coord
