// Package proximity provides point-to-segment and point-to-triangle distance
// queries in 3D, the leaf primitives of convex proximity solvers such as GJK.
//
// The queries live in package distance and are generic over the vector type.
// This package wires them to github.com/go-gl/mathgl for the two supported
// widths:
//
//	k := proximity.New64()
//	dist2, err := k.PointTriDist2(p, a, b, c)
//	res, err := k.PointTriClosest(p, a, b, c) // res.Dist2, res.Witness
//
// Tolerances are bound to the kernel at construction (see package tolerance).
// Degenerate primitives are reported as errors, never as NaN.
package proximity

import (
	"github.com/akmonengine/proximity/distance"
	"github.com/akmonengine/proximity/tolerance"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Kernel64 runs queries on mgl64 vectors in float64.
type Kernel64 = distance.Kernel[mgl64.Vec3, float64]

// Kernel32 runs queries on mgl32 vectors in float32.
type Kernel32 = distance.Kernel[mgl32.Vec3, float32]

// New64 returns a float64 kernel using the float64 machine epsilon.
func New64() *Kernel64 {
	return distance.New[mgl64.Vec3](tolerance.Float64())
}

// New32 returns a float32 kernel using the float32 machine epsilon.
func New32() *Kernel32 {
	return distance.New[mgl32.Vec3](tolerance.Float32())
}

// New64WithTolerance returns a float64 kernel bound to tol.
func New64WithTolerance(tol tolerance.Tolerance[float64]) *Kernel64 {
	return distance.New[mgl64.Vec3](tol)
}

// New32WithTolerance returns a float32 kernel bound to tol.
func New32WithTolerance(tol tolerance.Tolerance[float32]) *Kernel32 {
	return distance.New[mgl32.Vec3](tol)
}
