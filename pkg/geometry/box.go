package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Face indexes the six faces of a Box in the order Faces returns them.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// Box is an oriented box. Extensions holds the full edge length on each
// local axis; each face sits Extensions/2 away from Center.
type Box struct {
	Center     math.Vec3
	Extensions math.Vec3
	Rotation   math.Quat
}

// face orientations relative to the box, built once.
var (
	sideX = math.QuatFromAxisAngle(math.UnitZ, math.Radians(90))
	sideY = math.QuatIdentity()
	sideZ = math.QuatFromAxisAngle(math.UnitX, math.Radians(-90))
)

// HalfExtensions returns Extensions/2.
func (b Box) HalfExtensions() math.Vec3 {
	return b.Extensions.Scale(0.5)
}

// Expand returns the box with every face pushed outward by margin.
func (b Box) Expand(margin float32) Box {
	return Box{Center: b.Center, Extensions: b.Extensions.AddScalar(2 * margin), Rotation: b.Rotation}
}

// Faces returns the six outward-facing quads of the box, each face plane
// pulled toward the center by margin. Quad sizes are not reduced.
// Faces are derived on every call.
func (b Box) Faces(margin float32) [6]Quad {
	h := b.HalfExtensions()
	e := b.Extensions

	offset := func(local math.Vec3) math.Vec3 {
		return b.Center.Add(b.Rotation.Rotate(local))
	}

	qx := b.Rotation.Mul(sideX)
	qy := b.Rotation.Mul(sideY)
	qz := b.Rotation.Mul(sideZ)

	return [6]Quad{
		FacePosX: {Center: offset(math.Vec3{X: h.X - margin}), Extensions: math.Vec2{X: e.Y, Y: e.Z}, Rotation: qx, Reverse: true},
		FaceNegX: {Center: offset(math.Vec3{X: -h.X + margin}), Extensions: math.Vec2{X: e.Y, Y: e.Z}, Rotation: qx, Reverse: false},
		FacePosY: {Center: offset(math.Vec3{Y: h.Y - margin}), Extensions: math.Vec2{X: e.X, Y: e.Z}, Rotation: qy, Reverse: false},
		FaceNegY: {Center: offset(math.Vec3{Y: -h.Y + margin}), Extensions: math.Vec2{X: e.X, Y: e.Z}, Rotation: qy, Reverse: true},
		FacePosZ: {Center: offset(math.Vec3{Z: h.Z - margin}), Extensions: math.Vec2{X: e.X, Y: e.Y}, Rotation: qz, Reverse: true},
		FaceNegZ: {Center: offset(math.Vec3{Z: -h.Z + margin}), Extensions: math.Vec2{X: e.X, Y: e.Y}, Rotation: qz, Reverse: false},
	}
}

// Corners returns the eight world-space corners, bottom four first.
func (b Box) Corners() [8]math.Vec3 {
	h := b.HalfExtensions()
	local := [8]math.Vec3{
		{X: h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: -h.Y, Z: h.Z},
		{X: -h.X, Y: -h.Y, Z: h.Z},
		{X: -h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: -h.Z},
	}
	var out [8]math.Vec3
	for i, p := range local {
		out[i] = b.Center.Add(b.Rotation.Rotate(p))
	}
	return out
}

// Referential returns the box's local frame.
func (b Box) Referential() Referential {
	return NewReferential(b.Center).Rotated(b.Rotation)
}
