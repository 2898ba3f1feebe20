// Package tolerance holds the numeric tolerance used by the proximity kernels.
//
// A Tolerance is a plain value bound to a kernel at construction. There is no
// package-level epsilon: two kernels with different tolerances can coexist and
// be used concurrently.
package tolerance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Real is the set of floating-point widths a kernel can be instantiated with.
type Real interface {
	~float32 | ~float64
}

const (
	// Float64Epsilon is the machine epsilon of float64 (DBL_EPSILON).
	Float64Epsilon = 2.220446049250313e-16
	// Float32Epsilon is the machine epsilon of float32 (FLT_EPSILON).
	Float32Epsilon = 1.1920929e-07
)

// Tolerance drives every approximate comparison made by a kernel.
type Tolerance[R Real] struct {
	Epsilon R
}

// New returns a Tolerance with the given epsilon.
// The epsilon must be finite and non-negative.
func New[R Real](epsilon R) (Tolerance[R], error) {
	e := float64(epsilon)
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return Tolerance[R]{}, fmt.Errorf("invalid epsilon %v: must be finite and non-negative", epsilon)
	}
	return Tolerance[R]{Epsilon: epsilon}, nil
}

// Float64 returns the default tolerance for float64 kernels.
func Float64() Tolerance[float64] {
	return Tolerance[float64]{Epsilon: Float64Epsilon}
}

// Float32 returns the default tolerance for float32 kernels.
func Float32() Tolerance[float32] {
	return Tolerance[float32]{Epsilon: Float32Epsilon}
}

// IsZero reports whether |x| <= Epsilon.
func (t Tolerance[R]) IsZero(x R) bool {
	return scalar.EqualWithinAbs(float64(x), 0, float64(t.Epsilon))
}

// Eq reports whether a and b are equal within Epsilon, either absolutely
// or relative to the larger magnitude of the two.
func (t Tolerance[R]) Eq(a, b R) bool {
	eps := float64(t.Epsilon)
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), eps, eps)
}

// NegligibleSq reports whether |x| <= Epsilon·|ref|, given sq = x² and
// refSq = ref². Squares are compared directly so callers holding squared
// lengths never take a square root.
func (t Tolerance[R]) NegligibleSq(sq, refSq R) bool {
	eps := float64(t.Epsilon)
	return scalar.EqualWithinAbs(float64(sq), 0, eps*eps*float64(refSq))
}

// Finite reports whether x is neither infinite nor NaN.
func Finite[R Real](x R) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// AtLeast reports whether x >= bound, treating values Eq to bound as equal.
func (t Tolerance[R]) AtLeast(x, bound R) bool {
	return x > bound || t.Eq(x, bound)
}

// AtMost reports whether x <= bound, treating values Eq to bound as equal.
func (t Tolerance[R]) AtMost(x, bound R) bool {
	return x < bound || t.Eq(x, bound)
}
