// Package gridcore is a generic 2-D coordinate and grid foundation for
// grid-based algorithms — pathfinding, simulation, puzzle solving.
//
// What is gridcore?
//
//	A small, pure-Go library with two subpackages:
//		• coord/ — Coord[T] over any integer kind, with overflow-aware
//		  directional movement, limits, and collinearity testing
//		• grid/  — one Grid capability, two backends: a sparse map-backed
//		  HashGrid and a dense row-major LinearGrid
//
// Why choose gridcore?
//
//   - Explicit failure — moves and lookups return (value, ok) or a
//     sentinel error; nothing wraps, nothing crashes
//   - Generic — byte-sized puzzle boards and int64 world maps share one
//     coordinate type
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example, a 3×3 dense grid with screen orientation
// (y grows downward):
//
//	(0,0)─(1,0)─(2,0)
//	  │     │     │
//	(0,1)─(1,1)─(2,1)
//	  │     │     │
//	(0,2)─(1,2)─(2,2)
//
// Grid instances are not thread-safe; each is meant to be owned and
// mutated by a single caller. See coord and grid package docs for the
// full contracts, including the HashGrid bounds-checking trade-off.
//
//	go get github.com/katalvlaran/gridcore
package gridcore
