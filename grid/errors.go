// Package grid: sentinel error set. Operations return these sentinels
// (wrapped with context where useful) and callers match them with
// errors.Is; no operation panics on user-triggered conditions.
package grid

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside the backend's
	// configured limits (HashGrid) or intrinsic dimensions (LinearGrid).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBadDimensions indicates a non-positive width or height at
	// LinearGrid construction.
	ErrBadDimensions = errors.New("grid: width and height must be > 0")
)
