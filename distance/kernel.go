// Package distance computes squared Euclidean distances from a point to a
// segment and to a triangle in 3D, optionally with the closest point on the
// primitive (the witness).
//
// These are the leaf queries used by simplex-based distance and penetration
// solvers (GJK reduces its simplex with them, EPA finds the face nearest to
// the origin with them). The package knows nothing about shapes or support
// functions: it only sees points.
//
// Every query comes in two call shapes:
//   - ...Dist2: squared distance only. Skips building the witness where the
//     algebra allows it.
//   - ...Closest: squared distance and witness, as a Proximity.
//
// Degenerate primitives (zero-length segment, collinear or zero-area triangle)
// are reported with ErrDegenerateSegment / ErrDegenerateTriangle instead of
// propagating NaN or Inf. Lengths are judged relative to the magnitude of the
// vertices, so geometry of any scale is accepted as long as its vertices are
// distinguishable. Input whose squared lengths overflow yields ErrNotFinite.
package distance

import (
	"github.com/akmonengine/proximity/tolerance"
)

// Vector is the 3D vector arithmetic consumed by the kernel.
// mgl64.Vec3 and mgl32.Vec3 satisfy it.
type Vector[V any, R tolerance.Real] interface {
	Add(v2 V) V
	Sub(v2 V) V
	Mul(c R) V
	Dot(v2 V) R
	LenSqr() R
}

// Proximity is the result of a query that also asked for the witness.
type Proximity[V any, R tolerance.Real] struct {
	// Dist2 is the squared distance from the query point to the primitive.
	Dist2 R
	// Witness is the point of the primitive closest to the query point.
	Witness V
}

// Kernel evaluates distance queries under a fixed tolerance.
// A Kernel is immutable and safe for concurrent use.
type Kernel[V Vector[V, R], R tolerance.Real] struct {
	tol tolerance.Tolerance[R]
}

// New returns a Kernel bound to tol. The vector type must be given
// explicitly, the real type is inferred from tol:
//
//	k := distance.New[mgl64.Vec3](tolerance.Float64())
func New[V Vector[V, R], R tolerance.Real](tol tolerance.Tolerance[R]) *Kernel[V, R] {
	return &Kernel[V, R]{tol: tol}
}

// Tolerance returns the tolerance the kernel was built with.
func (k *Kernel[V, R]) Tolerance() tolerance.Tolerance[R] {
	return k.tol
}

// inUnitInterval reports whether x lies in [0, 1] under the kernel's tolerance.
func (k *Kernel[V, R]) inUnitInterval(x R) bool {
	return k.tol.AtLeast(x, 0) && k.tol.AtMost(x, 1)
}
