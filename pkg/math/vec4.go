package math

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewVec4 builds a Vec4 from a Vec3 and a fourth component.
func NewVec4(xyz Vec3, w float32) Vec4 {
	return Vec4{xyz.X, xyz.Y, xyz.Z, w}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
