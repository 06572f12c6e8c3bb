package coord

// CheckedAdd returns a+b and reports whether the sum stayed inside T.
// Overflow is detected by comparing the wrapped result against an
// operand, so no widening conversion is needed and the same code serves
// signed and unsigned kinds.
// Complexity: O(1).
func CheckedAdd[T Number](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// CheckedSub returns a-b and reports whether the difference stayed
// inside T. Symmetric counterpart of CheckedAdd.
// Complexity: O(1).
func CheckedSub[T Number](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}
