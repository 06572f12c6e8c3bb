package coord

// Move is the outcome of one directional attempt. OK reports whether the
// move stayed inside the numeric domain and any supplied limit; when OK
// is false, Coord is the zero value.
type Move[T Number] struct {
	Coord Coord[T]
	OK    bool
}

// Panic messages for the Move* contract-violation family.
const (
	panicMoveUp    = "coord: MoveUp out of domain"
	panicMoveDown  = "coord: MoveDown out of domain"
	panicMoveLeft  = "coord: MoveLeft out of domain"
	panicMoveRight = "coord: MoveRight out of domain"
)

// UpN returns the coordinate n cells up (decreasing Y). When minY is set
// the limit is checked before the arithmetic: the move fails if Y < n or
// Y-n would land below the limit. Without a limit, only numeric
// underflow of T fails the move.
// Complexity: O(1).
func (c Coord[T]) UpN(n T, minY Bound[T]) (Coord[T], bool) {
	if lo, set := minY.Get(); set && (c.Y < n || c.Y-n < lo) {
		return Coord[T]{}, false
	}
	y, ok := CheckedSub(c.Y, n)
	if !ok {
		return Coord[T]{}, false
	}
	return Coord[T]{X: c.X, Y: y}, true
}

// DownN returns the coordinate n cells down (increasing Y). When maxY is
// set the sum is computed with CheckedAdd so the limit comparison itself
// cannot wrap; a sum past the limit or past T fails the move.
// Complexity: O(1).
func (c Coord[T]) DownN(n T, maxY Bound[T]) (Coord[T], bool) {
	y, ok := CheckedAdd(c.Y, n)
	if !ok {
		return Coord[T]{}, false
	}
	if hi, set := maxY.Get(); set && y > hi {
		return Coord[T]{}, false
	}
	return Coord[T]{X: c.X, Y: y}, true
}

// LeftN returns the coordinate n cells left (decreasing X). Limit
// semantics mirror UpN on the x axis.
// Complexity: O(1).
func (c Coord[T]) LeftN(n T, minX Bound[T]) (Coord[T], bool) {
	if lo, set := minX.Get(); set && (c.X < n || c.X-n < lo) {
		return Coord[T]{}, false
	}
	x, ok := CheckedSub(c.X, n)
	if !ok {
		return Coord[T]{}, false
	}
	return Coord[T]{X: x, Y: c.Y}, true
}

// RightN returns the coordinate n cells right (increasing X). Limit
// semantics mirror DownN on the x axis.
// Complexity: O(1).
func (c Coord[T]) RightN(n T, maxX Bound[T]) (Coord[T], bool) {
	x, ok := CheckedAdd(c.X, n)
	if !ok {
		return Coord[T]{}, false
	}
	if hi, set := maxX.Get(); set && x > hi {
		return Coord[T]{}, false
	}
	return Coord[T]{X: x, Y: c.Y}, true
}

// Up moves one cell up, bounded below by minY when set.
func (c Coord[T]) Up(minY Bound[T]) (Coord[T], bool) {
	return c.UpN(T(1), minY)
}

// Down moves one cell down, bounded above by maxY when set.
func (c Coord[T]) Down(maxY Bound[T]) (Coord[T], bool) {
	return c.DownN(T(1), maxY)
}

// Left moves one cell left, bounded below by minX when set.
func (c Coord[T]) Left(minX Bound[T]) (Coord[T], bool) {
	return c.LeftN(T(1), minX)
}

// Right moves one cell right, bounded above by maxX when set.
func (c Coord[T]) Right(maxX Bound[T]) (Coord[T], bool) {
	return c.RightN(T(1), maxX)
}

// UpRight composes Up then Right; if the vertical move fails the
// horizontal one is not attempted.
func (c Coord[T]) UpRight(maxX, minY Bound[T]) (Coord[T], bool) {
	p, ok := c.Up(minY)
	if !ok {
		return Coord[T]{}, false
	}
	return p.Right(maxX)
}

// UpLeft composes Up then Left; vertical move first.
func (c Coord[T]) UpLeft(minX, minY Bound[T]) (Coord[T], bool) {
	p, ok := c.Up(minY)
	if !ok {
		return Coord[T]{}, false
	}
	return p.Left(minX)
}

// DownRight composes Down then Right; vertical move first.
func (c Coord[T]) DownRight(maxX, maxY Bound[T]) (Coord[T], bool) {
	p, ok := c.Down(maxY)
	if !ok {
		return Coord[T]{}, false
	}
	return p.Right(maxX)
}

// DownLeft composes Down then Left; vertical move first.
func (c Coord[T]) DownLeft(minX, maxY Bound[T]) (Coord[T], bool) {
	p, ok := c.Down(maxY)
	if !ok {
		return Coord[T]{}, false
	}
	return p.Left(minX)
}

// UDLR attempts all four single-step moves with per-direction limits
// (limits[0]=min-y for up, limits[1]=max-y for down, limits[2]=min-x for
// left, limits[3]=max-x for right) and returns only the successful
// coordinates, in up/down/left/right order.
// Complexity: O(1).
func (c Coord[T]) UDLR(limits [4]T) []Coord[T] {
	out := make([]Coord[T], 0, 4)
	for _, m := range c.UDLRUnfiltered(limits) {
		if m.OK {
			out = append(out, m.Coord)
		}
	}
	return out
}

// UDLRUnfiltered is UDLR preserving positional slots, for callers that
// need direction identity: index 0 is up, 1 down, 2 left, 3 right, each
// with its failure recorded in place.
// Complexity: O(1).
func (c Coord[T]) UDLRUnfiltered(limits [4]T) [4]Move[T] {
	var out [4]Move[T]
	out[0].Coord, out[0].OK = c.Up(At(limits[0]))
	out[1].Coord, out[1].OK = c.Down(At(limits[1]))
	out[2].Coord, out[2].OK = c.Left(At(limits[2]))
	out[3].Coord, out[3].OK = c.Right(At(limits[3]))
	return out
}

// MoveUp replaces c with the cell one step up, with no limit applied.
// Calling a bare Move asserts the caller already knows the step is safe;
// exhausting the numeric domain here is a contract violation and panics.
func (c *Coord[T]) MoveUp() {
	p, ok := c.Up(Unbounded[T]())
	if !ok {
		panic(panicMoveUp)
	}
	*c = p
}

// MoveDown replaces c with the cell one step down; panics on overflow.
func (c *Coord[T]) MoveDown() {
	p, ok := c.Down(Unbounded[T]())
	if !ok {
		panic(panicMoveDown)
	}
	*c = p
}

// MoveLeft replaces c with the cell one step left; panics on underflow.
func (c *Coord[T]) MoveLeft() {
	p, ok := c.Left(Unbounded[T]())
	if !ok {
		panic(panicMoveLeft)
	}
	*c = p
}

// MoveRight replaces c with the cell one step right; panics on overflow.
func (c *Coord[T]) MoveRight() {
	p, ok := c.Right(Unbounded[T]())
	if !ok {
		panic(panicMoveRight)
	}
	*c = p
}
