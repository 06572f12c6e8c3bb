package coord_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcore/coord"
)

// none is shorthand for an absent limit in these tests.
func none[T coord.Number]() coord.Bound[T] { return coord.Unbounded[T]() }

//----------------------------------------------------------------------------//
// Single-step moves
//----------------------------------------------------------------------------//

// TestSingleStepMoves verifies the screen-coordinate convention:
// Up decrements Y, Down increments it.
func TestSingleStepMoves(t *testing.T) {
	c := coord.New(uint(5), 5)

	got, ok := c.Up(none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(5), 4), got)

	got, ok = c.Down(none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(5), 6), got)

	got, ok = c.Left(none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(4), 5), got)

	got, ok = c.Right(none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(6), 5), got)
}

// TestStepN verifies the explicit-step variants.
func TestStepN(t *testing.T) {
	c := coord.New(uint(10), 10)

	got, ok := c.UpN(3, none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(10), 7), got)

	got, ok = c.DownN(2, none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(10), 12), got)

	got, ok = c.LeftN(4, none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(6), 10), got)

	got, ok = c.RightN(5, none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(15), 10), got)
}

//----------------------------------------------------------------------------//
// Numeric-domain edges
//----------------------------------------------------------------------------//

// TestUnderflowAtZero ensures moving past the unsigned minimum yields no
// result instead of wrapping.
func TestUnderflowAtZero(t *testing.T) {
	c := coord.New(uint32(0), 0)

	_, ok := c.Up(none[uint32]())
	assert.False(t, ok)
	_, ok = c.Left(none[uint32]())
	assert.False(t, ok)
	_, ok = c.UpN(1, none[uint32]())
	assert.False(t, ok)
	_, ok = c.LeftN(1, none[uint32]())
	assert.False(t, ok)
}

// TestSignedDomainEdges covers the int8 extremes in all four directions.
func TestSignedDomainEdges(t *testing.T) {
	lo := coord.New(int8(math.MinInt8), math.MinInt8)
	_, ok := lo.Up(none[int8]())
	assert.False(t, ok, "up past MinInt8 must fail")
	_, ok = lo.Left(none[int8]())
	assert.False(t, ok, "left past MinInt8 must fail")

	hi := coord.New(int8(math.MaxInt8), math.MaxInt8)
	_, ok = hi.Down(none[int8]())
	assert.False(t, ok, "down past MaxInt8 must fail")
	_, ok = hi.Right(none[int8]())
	assert.False(t, ok, "right past MaxInt8 must fail")
}

// TestSignedCrossesZero confirms signed coordinates move freely through
// zero when no limit is set.
func TestSignedCrossesZero(t *testing.T) {
	c := coord.New(0, 0)
	got, ok := c.UpN(10, none[int]())
	require.True(t, ok)
	assert.Equal(t, coord.New(0, -10), got)
}

//----------------------------------------------------------------------------//
// Limits
//----------------------------------------------------------------------------//

// TestLowerLimit verifies the limit check runs before the subtraction:
// a step larger than the current component fails outright, and a result
// below the limit fails too.
func TestLowerLimit(t *testing.T) {
	c := coord.New(uint(5), 5)

	got, ok := c.UpN(1, coord.At(uint(4)))
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(5), 4), got)

	_, ok = c.UpN(2, coord.At(uint(4)))
	assert.False(t, ok, "landing below the limit must fail")

	// Step exceeding the component fails even on a signed type where the
	// subtraction itself would succeed.
	s := coord.New(5, 5)
	_, ok = s.UpN(10, coord.At(-100))
	assert.False(t, ok, "step past the component is treated as crossing the limit")

	_, ok = s.LeftN(10, coord.At(-100))
	assert.False(t, ok)
}

// TestUpperLimit verifies inclusive upper limits and that the limit
// comparison itself cannot wrap at the top of the domain.
func TestUpperLimit(t *testing.T) {
	c := coord.New(uint8(5), 5)

	got, ok := c.Down(coord.At(uint8(6)))
	require.True(t, ok)
	assert.Equal(t, coord.New(uint8(5), 6), got)

	_, ok = c.DownN(2, coord.At(uint8(6)))
	assert.False(t, ok)

	// At the numeric ceiling the sum overflows; the move must fail, not
	// wrap around below the limit.
	top := coord.New(uint8(255), 255)
	_, ok = top.DownN(10, coord.At(uint8(255)))
	assert.False(t, ok)
	_, ok = top.RightN(10, coord.At(uint8(255)))
	assert.False(t, ok)
}

// TestRoundTrip checks that UpN and DownN are mutual inverses within the
// domain when no limit is supplied, and likewise LeftN/RightN.
func TestRoundTrip(t *testing.T) {
	for _, y := range []uint16{1, 7, 255, 9999, math.MaxUint16} {
		for _, n := range []uint16{1, 2, y} {
			if n > y {
				continue
			}
			c := coord.New(uint16(3), y)
			up, ok := c.UpN(n, none[uint16]())
			require.True(t, ok, "UpN(%d) from y=%d", n, y)
			back, ok := up.DownN(n, none[uint16]())
			require.True(t, ok)
			assert.Equal(t, c, back)
		}
	}

	c := coord.New(int32(-40), 12)
	right, ok := c.RightN(100, none[int32]())
	require.True(t, ok)
	back, ok := right.LeftN(100, none[int32]())
	require.True(t, ok)
	assert.Equal(t, c, back)
}

//----------------------------------------------------------------------------//
// Diagonals
//----------------------------------------------------------------------------//

// TestDiagonals verifies the two-axis composites and their limits.
func TestDiagonals(t *testing.T) {
	c := coord.New(uint(5), 5)

	got, ok := c.UpRight(none[uint](), none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(6), 4), got)

	got, ok = c.UpLeft(none[uint](), none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(4), 4), got)

	got, ok = c.DownRight(none[uint](), none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(6), 6), got)

	got, ok = c.DownLeft(none[uint](), none[uint]())
	require.True(t, ok)
	assert.Equal(t, coord.New(uint(4), 6), got)
}

// TestDiagonalShortCircuit ensures a failed vertical move aborts the
// composite before the horizontal move is attempted.
func TestDiagonalShortCircuit(t *testing.T) {
	top := coord.New(uint(3), 0)
	_, ok := top.UpRight(none[uint](), none[uint]())
	assert.False(t, ok, "vertical failure must abort the composite")

	edge := coord.New(uint(0), 5)
	_, ok = edge.DownLeft(none[uint](), none[uint]())
	assert.False(t, ok, "horizontal failure after a good vertical move must fail")
}

//----------------------------------------------------------------------------//
// UDLR
//----------------------------------------------------------------------------//

// TestUDLR verifies filtering and the up/down/left/right result order on
// a fully in-bounds cell.
func TestUDLR(t *testing.T) {
	c := coord.New(uint(1), 1)
	got := c.UDLR([4]uint{0, 2, 0, 2})

	want := []coord.Coord[uint]{
		coord.New(uint(1), 0), // up
		coord.New(uint(1), 2), // down
		coord.New(uint(0), 1), // left
		coord.New(uint(2), 1), // right
	}
	assert.Equal(t, want, got)
}

// TestUDLRCorner verifies that blocked directions are dropped while the
// survivors keep their relative order.
func TestUDLRCorner(t *testing.T) {
	c := coord.New(uint(0), 0)
	got := c.UDLR([4]uint{0, 2, 0, 2})

	want := []coord.Coord[uint]{
		coord.New(uint(0), 1), // down
		coord.New(uint(1), 0), // right
	}
	assert.Equal(t, want, got)
}

// TestUDLRUnfiltered verifies positional slots survive failures, so
// callers keep direction identity.
func TestUDLRUnfiltered(t *testing.T) {
	c := coord.New(uint(0), 0)
	got := c.UDLRUnfiltered([4]uint{0, 2, 0, 2})

	assert.False(t, got[0].OK, "up blocked at the top row")
	assert.True(t, got[1].OK)
	assert.Equal(t, coord.New(uint(0), 1), got[1].Coord)
	assert.False(t, got[2].OK, "left blocked at the first column")
	assert.True(t, got[3].OK)
	assert.Equal(t, coord.New(uint(1), 0), got[3].Coord)
}

//----------------------------------------------------------------------------//
// In-place Move* family
//----------------------------------------------------------------------------//

// TestMoveInPlace verifies the convenience moves mutate the receiver.
func TestMoveInPlace(t *testing.T) {
	c := coord.New(uint(5), 5)

	c.MoveUp()
	assert.Equal(t, coord.New(uint(5), 4), c)
	c.MoveDown()
	assert.Equal(t, coord.New(uint(5), 5), c)
	c.MoveLeft()
	assert.Equal(t, coord.New(uint(4), 5), c)
	c.MoveRight()
	assert.Equal(t, coord.New(uint(5), 5), c)
}

// TestMovePanics verifies that Move* treats domain exhaustion as a
// contract violation.
func TestMovePanics(t *testing.T) {
	origin := coord.New(uint8(0), 0)
	assert.Panics(t, func() { c := origin; c.MoveUp() })
	assert.Panics(t, func() { c := origin; c.MoveLeft() })

	top := coord.New(int8(math.MaxInt8), math.MaxInt8)
	assert.Panics(t, func() { c := top; c.MoveDown() })
	assert.Panics(t, func() { c := top; c.MoveRight() })
}
