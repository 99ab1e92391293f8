// Package bound implements length arithmetic where math.MaxInt stands for
// an unbounded length and absorbs every operation.
package bound

import "math"

// Inf is the unbounded length.
const Inf = math.MaxInt

// Add returns a+b, saturating at Inf.
func Add(a, b int) int {
	if a == Inf || b == Inf || a > Inf-b {
		return Inf
	}
	return a + b
}

// Sub returns a-b, floored at 0. Inf minus a finite value stays Inf.
func Sub(a, b int) int {
	if b >= a {
		return 0
	}
	if a == Inf {
		return Inf
	}
	return a - b
}

// Mul returns a*b, saturating at Inf.
func Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a == Inf || b == Inf || a > Inf/b {
		return Inf
	}
	return a * b
}

// CeilDiv returns ceil(a/n) for n > 0.
func CeilDiv(a, n int) int {
	if a == Inf {
		return Inf
	}
	q := a / n
	if a%n != 0 {
		q++
	}
	return q
}

// FloorDiv returns floor(a/n) for n > 0.
func FloorDiv(a, n int) int {
	if a == Inf {
		return Inf
	}
	return a / n
}
