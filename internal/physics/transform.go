package physics

import "github.com/Faultbox/platformer/pkg/math"

// Transform places an actor in the world. Rotation holds Euler angles in
// radians.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// NewTransform creates a transform at position with unit scale.
func NewTransform(position math.Vec3) Transform {
	return Transform{Position: position, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// ModelMatrix returns T * Rx * Ry * Rz * S.
func (t Transform) ModelMatrix() math.Mat4 {
	return math.Translate(t.Position).
		Mul(math.RotateX(t.Rotation.X)).
		Mul(math.RotateY(t.Rotation.Y)).
		Mul(math.RotateZ(t.Rotation.Z)).
		Mul(math.Scale(t.Scale))
}

// Quat returns the rotation as a quaternion with the same X, Y, Z order.
func (t Transform) Quat() math.Quat {
	qx := math.QuatFromAxisAngle(math.UnitX, t.Rotation.X)
	qy := math.QuatFromAxisAngle(math.UnitY, t.Rotation.Y)
	qz := math.QuatFromAxisAngle(math.UnitZ, t.Rotation.Z)
	return qx.Mul(qy).Mul(qz)
}
