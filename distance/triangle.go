package distance

// PointTriDist2 returns the squared distance from p to the closed triangle
// (x0, b, c).
//
// Returns ErrDegenerateTriangle if the triangle has zero area and ErrNotFinite
// if its squared lengths are NaN or overflow.
func (k *Kernel[V, R]) PointTriDist2(p, x0, b, c V) (R, error) {
	dist, _, err := k.pointTri(p, x0, b, c, false)
	return dist, err
}

// PointTriClosest returns the squared distance from p to the closed triangle
// (x0, b, c) together with the point of the triangle closest to p.
//
// Returns ErrDegenerateTriangle if the triangle has zero area and ErrNotFinite
// if its squared lengths are NaN or overflow.
func (k *Kernel[V, R]) PointTriClosest(p, x0, b, c V) (Proximity[V, R], error) {
	dist, witness, err := k.pointTri(p, x0, b, c, true)
	if err != nil {
		return Proximity[V, R]{}, err
	}
	return Proximity[V, R]{Dist2: dist, Witness: witness}, nil
}

// pointTri minimises D(s, t) = |T(s, t) - P|² over the triangle
//
//	T(s, t) = x0 + s.d1 + t.d2,  d1 = B - x0, d2 = C - x0,
//	s >= 0, t >= 0, s + t <= 1
//
// Algorithm overview:
//  1. Solve the 2x2 normal equations of D for the unconstrained minimum (s, t)
//  2. If (s, t) lies inside the triangle, T(s, t) is the closest point
//  3. Otherwise the closest point lies on the boundary: run the segment query
//     on (x0,B), (x0,C) and (B,C) and keep the smallest result
//
// With a = x0 - P and u = a·a, v = d1·d1, w = d2·d2, p = a·d1, q = a·d2,
// r = d1·d2:
//
//	D(s, t) = s²v + t²w + 2str + 2sp + 2tq + u
//	s = (qr - wp) / (wv - r²)
//	t = (-sr - q) / w
func (k *Kernel[V, R]) pointTri(p, x0, b, c V, withWitness bool) (R, V, error) {
	var witness V

	e1 := k.newEdge(x0, b)
	e2 := k.newEdge(x0, c)
	e3 := k.newEdge(b, c)
	d1, d2 := e1.d, e2.d
	a := x0.Sub(p)

	u := a.Dot(a)
	v := e1.dd
	w := e2.dd
	pp := a.Dot(d1)
	q := a.Dot(d2)
	r := d1.Dot(d2)

	if err := k.checkTriangle(e1, e2, e3, r); err != nil {
		return 0, witness, err
	}

	s := (q*r - w*pp) / (w*v - r*r)
	t := (-s*r - q) / w

	if k.inUnitInterval(s) && k.inUnitInterval(t) && k.tol.AtMost(s+t, 1) {
		if withWitness {
			witness = x0.Add(d1.Mul(s)).Add(d2.Mul(t))
			return witness.Sub(p).LenSqr(), witness, nil
		}

		dist := s*s*v + t*t*w + 2*s*t*r + 2*s*pp + 2*t*q + u
		// cancellation against u can leave a tiny negative value
		if dist < 0 {
			dist = 0
		}
		return dist, witness, nil
	}

	// all three edges passed checkTriangle
	dist, witness := k.closestOnEdge(p, e1, withWitness)
	for _, e := range [2]edge[V, R]{e2, e3} {
		edgeDist, edgeWitness := k.closestOnEdge(p, e, withWitness)
		if edgeDist < dist {
			dist = edgeDist
			witness = edgeWitness
		}
	}

	return dist, witness, nil
}
