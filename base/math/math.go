package math

// CeilInt returns the smallest integer n such that n*b >= a, for positive b.
func CeilInt(a, b int) int {
	return (a + b - 1) / b
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
