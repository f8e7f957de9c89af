package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Cylinder is a finite cylinder whose axis is the local X axis.
type Cylinder struct {
	Center   math.Vec3
	Height   float32
	Radius   float32
	Rotation math.Quat
}

// Axis returns the world-space endpoints of the centerline,
// Center ± Rotation·(Height/2, 0, 0).
func (c Cylinder) Axis() (a, b math.Vec3) {
	return axisEnds(c.Center, c.Height, c.Rotation)
}

// Capsule is a cylinder body capped by two hemispheres of the same radius.
type Capsule struct {
	Center   math.Vec3
	Height   float32 // length of the cylindrical body
	Radius   float32
	Rotation math.Quat
}

// Axis returns the world-space endpoints of the body's centerline.
func (c Capsule) Axis() (a, b math.Vec3) {
	return axisEnds(c.Center, c.Height, c.Rotation)
}

// Body returns the cylindrical part of the capsule.
func (c Capsule) Body() Cylinder {
	return Cylinder{Center: c.Center, Height: c.Height, Radius: c.Radius, Rotation: c.Rotation}
}

// Caps returns the end spheres, +Height/2 first.
func (c Capsule) Caps() (Sphere, Sphere) {
	a, b := c.Axis()
	return Sphere{Center: a, Radius: c.Radius}, Sphere{Center: b, Radius: c.Radius}
}

func axisEnds(center math.Vec3, height float32, q math.Quat) (math.Vec3, math.Vec3) {
	half := math.Vec3{X: height / 2}
	return center.Add(q.Rotate(half)), center.Add(q.Rotate(half.Neg()))
}
