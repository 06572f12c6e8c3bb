package coord

// Collinear reports whether every point lies on a single straight line.
// Fewer than three points are vacuously collinear. Each point after the
// first two is tested against the line through pts[0] and pts[1] with a
// scaled cross-product comparison (refDX*dy == refDY*dx), which stays
// exact for integer domains and needs no division.
// Complexity: O(len(pts)).
func Collinear[T Number](pts []Coord[T]) bool {
	if len(pts) < 3 {
		return true
	}
	refDX := pts[1].X - pts[0].X
	refDY := pts[1].Y - pts[0].Y
	for _, p := range pts[2:] {
		dx := p.X - pts[0].X
		dy := p.Y - pts[0].Y
		if refDX*dy != refDY*dx {
			return false
		}
	}
	return true
}
