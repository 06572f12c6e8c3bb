package grid

import "github.com/katalvlaran/gridcore/coord"

// DefaultBoundsCheck is the construction-time default for HashGrid
// bounds validation: checking ON (the "debug" profile). See the package
// documentation for the trade-off behind disabling it.
const DefaultBoundsCheck = true

// Option configures a HashGrid at construction. Options are applied
// left-to-right; unset axis bounds impose no limit.
type Option[T coord.Number] func(*options[T])

// options stores the effective HashGrid configuration after applying
// Option setters. Unexported so configuration is fixed at construction.
type options[T coord.Number] struct {
	minX, maxX  coord.Bound[T]
	minY, maxY  coord.Bound[T]
	boundsCheck bool
}

func defaultOptions[T coord.Number]() options[T] {
	return options[T]{boundsCheck: DefaultBoundsCheck}
}

// WithMinX sets the inclusive lower bound on the x axis.
func WithMinX[T coord.Number](v T) Option[T] {
	return func(o *options[T]) { o.minX = coord.At(v) }
}

// WithMaxX sets the inclusive upper bound on the x axis.
func WithMaxX[T coord.Number](v T) Option[T] {
	return func(o *options[T]) { o.maxX = coord.At(v) }
}

// WithMinY sets the inclusive lower bound on the y axis.
func WithMinY[T coord.Number](v T) Option[T] {
	return func(o *options[T]) { o.minY = coord.At(v) }
}

// WithMaxY sets the inclusive upper bound on the y axis.
func WithMaxY[T coord.Number](v T) Option[T] {
	return func(o *options[T]) { o.maxY = coord.At(v) }
}

// WithoutBoundsCheck disables all bounds validation on the grid (the
// "release" profile). Every access then passes CheckBounds, including
// Insert, so out-of-range keys are silently accepted and stored. This is
// an unsafe-for-correctness performance opt-in; configured bounds are
// kept but ignored until the grid is reconstructed with checking on.
func WithoutBoundsCheck[T coord.Number]() Option[T] {
	return func(o *options[T]) { o.boundsCheck = false }
}
