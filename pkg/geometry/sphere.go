package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Sphere is kept in world space. Owners rewrite Center every physics step.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Inflate returns the sphere with its radius grown by d.
func (s Sphere) Inflate(d float32) Sphere {
	return Sphere{Center: s.Center, Radius: s.Radius + d}
}
