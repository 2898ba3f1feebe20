package distance

// PointSegmentDist2 returns the squared distance from p to the closed
// segment [x0, b].
//
// Returns ErrDegenerateSegment if x0 and b coincide and ErrNotFinite if the
// squared length is NaN or overflows.
func (k *Kernel[V, R]) PointSegmentDist2(p, x0, b V) (R, error) {
	dist, _, err := k.pointSegment(p, x0, b, false)
	return dist, err
}

// PointSegmentClosest returns the squared distance from p to the closed
// segment [x0, b] together with the point of the segment closest to p.
//
// Returns ErrDegenerateSegment if x0 and b coincide and ErrNotFinite if the
// squared length is NaN or overflows.
func (k *Kernel[V, R]) PointSegmentClosest(p, x0, b V) (Proximity[V, R], error) {
	dist, witness, err := k.pointSegment(p, x0, b, true)
	if err != nil {
		return Proximity[V, R]{}, err
	}
	return Proximity[V, R]{Dist2: dist, Witness: witness}, nil
}

// pointSegment checks the segment [x0, b] and measures p against it.
func (k *Kernel[V, R]) pointSegment(p, x0, b V, withWitness bool) (R, V, error) {
	e := k.newEdge(x0, b)
	if err := k.checkEdge(e, ErrDegenerateSegment, "segment"); err != nil {
		var zero V
		return 0, zero, err
	}

	dist, witness := k.closestOnEdge(p, e, withWitness)
	return dist, witness, nil
}

// closestOnEdge minimises D(t) = |x0 + t.d - P|² over t in [0, 1],
// with x0 = e.from and d = e.to - e.from. The edge must have passed checkEdge.
//
// D is quadratic in t, its unconstrained minimum is at
//
//	t* = -(d·(x0-P)) / (d·d)
//
// and the constrained minimum is t* clamped to the segment. Values of t*
// within tolerance of an endpoint snap to that endpoint.
//
// The witness is only built when requested, except at the endpoints where it
// is free. Without a witness the interior distance reuses d and a.
func (k *Kernel[V, R]) closestOnEdge(p V, e edge[V, R], withWitness bool) (R, V) {
	var witness V

	a := e.from.Sub(p)
	t := -a.Dot(e.d) / e.dd

	switch {
	case t < 0 || k.tol.IsZero(t):
		// behind x0
		return a.LenSqr(), e.from
	case t > 1 || k.tol.Eq(t, 1):
		// past b
		return e.to.Sub(p).LenSqr(), e.to
	}

	if withWitness {
		witness = e.from.Add(e.d.Mul(t))
		return witness.Sub(p).LenSqr(), witness
	}

	// x0 + t.d - P = t.d + a
	return e.d.Mul(t).Add(a).LenSqr(), witness
}
