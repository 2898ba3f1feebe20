package distance

import (
	"errors"
	"fmt"

	"github.com/akmonengine/proximity/tolerance"
)

var (
	// ErrDegenerateSegment is returned when both endpoints of a segment
	// coincide, relative to their distance from the origin.
	ErrDegenerateSegment = errors.New("degenerate segment")
	// ErrDegenerateTriangle is returned when a triangle has zero area:
	// an edge of zero length or three collinear vertices.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	// ErrNotFinite is returned when the input contains NaN or Inf, or when
	// its squared lengths overflow the real type.
	ErrNotFinite = errors.New("non-finite geometry")
)

// edge is a segment with its direction and squared length precomputed.
type edge[V any, R tolerance.Real] struct {
	from, to V
	d        V
	dd       R
}

func (k *Kernel[V, R]) newEdge(from, to V) edge[V, R] {
	d := to.Sub(from)
	return edge[V, R]{from: from, to: to, d: d, dd: d.LenSqr()}
}

// ValidateSegment checks that x0 and b span a segment the kernel can query.
func (k *Kernel[V, R]) ValidateSegment(x0, b V) error {
	return k.checkEdge(k.newEdge(x0, b), ErrDegenerateSegment, "segment")
}

// ValidateTriangle checks that x0, b and c span a triangle the kernel can query.
func (k *Kernel[V, R]) ValidateTriangle(x0, b, c V) error {
	e1 := k.newEdge(x0, b)
	e2 := k.newEdge(x0, c)
	return k.checkTriangle(e1, e2, k.newEdge(b, c), e1.d.Dot(e2.d))
}

// checkEdge rejects an edge whose length is negligible next to the magnitude
// of its endpoints. The test is relative so small edges near the origin stay
// valid while endpoints that only differ by rounding do not.
func (k *Kernel[V, R]) checkEdge(e edge[V, R], degenerate error, name string) error {
	scale := e.from.LenSqr() + e.to.LenSqr()
	if !tolerance.Finite(e.dd) || !tolerance.Finite(scale) {
		return fmt.Errorf("%w: %s has squared length %v", ErrNotFinite, name, e.dd)
	}
	if k.tol.NegligibleSq(e.dd, scale) {
		return fmt.Errorf("%w: %s has squared length %v", degenerate, name, e.dd)
	}
	return nil
}

// checkTriangle takes the three edges x0-b, x0-c, b-c and r = d1·d2.
//
// The Gram determinant vw - r² is normalised by vw, which gives sin² of the
// angle at x0 and makes the collinearity test independent of scale.
func (k *Kernel[V, R]) checkTriangle(e1, e2, e3 edge[V, R], r R) error {
	if err := k.checkEdge(e1, ErrDegenerateTriangle, "edge x0-b"); err != nil {
		return err
	}
	if err := k.checkEdge(e2, ErrDegenerateTriangle, "edge x0-c"); err != nil {
		return err
	}
	if err := k.checkEdge(e3, ErrDegenerateTriangle, "edge b-c"); err != nil {
		return err
	}

	vw := e1.dd * e2.dd
	rr := r * r
	if !tolerance.Finite(vw) || !tolerance.Finite(rr) {
		return fmt.Errorf("%w: Gram determinant overflows (vw=%v, r²=%v)", ErrNotFinite, vw, rr)
	}
	if sin2 := (vw - rr) / vw; k.tol.IsZero(sin2) {
		return fmt.Errorf("%w: collinear vertices (sin²=%v)", ErrDegenerateTriangle, sin2)
	}
	return nil
}
