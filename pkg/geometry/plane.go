package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Plane is the set of points P with dot(P, Normal) == D. Normal is unit length.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// NewPlane creates a plane from a normal and signed distance to the origin.
func NewPlane(normal math.Vec3, d float32) Plane {
	return Plane{Normal: normal.Normalize(), D: d}
}

// PlaneFromPoint creates the plane with the given normal passing through p.
func PlaneFromPoint(normal, p math.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: p.Dot(n)}
}

// PlaneFromPoints creates the plane through a, b and c.
// The normal follows the right-hand rule on (b-a) x (c-a).
func PlaneFromPoints(a, b, c math.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, D: a.Dot(n)}
}

// Point returns the point of the plane closest to the origin.
func (p Plane) Point() math.Vec3 {
	return p.Normal.Scale(p.D)
}

// Distance returns the signed distance from v to the plane.
func (p Plane) Distance(v math.Vec3) float32 {
	return v.Dot(p.Normal) - p.D
}
