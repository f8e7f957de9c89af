package geometry

import "github.com/Faultbox/platformer/pkg/math"

// RoundedBox is a box whose edges and corners are rounded.
// Extensions holds width, height, length and the corner radius in W.
type RoundedBox struct {
	Center     math.Vec3
	Extensions math.Vec4
	Rotation   math.Quat
}

// NewRoundedBox clamps the corner radius to half the smallest edge.
func NewRoundedBox(center math.Vec3, extensions math.Vec4, rotation math.Quat) RoundedBox {
	smallest := math.Min(extensions.X, math.Min(extensions.Y, extensions.Z))
	extensions.W = math.Clamp(extensions.W, 0, smallest/2)
	return RoundedBox{Center: center, Extensions: extensions, Rotation: rotation}
}

// Radius returns the corner radius.
func (r RoundedBox) Radius() float32 {
	return r.Extensions.W
}

// Box returns the box the rounded box is carved from.
func (r RoundedBox) Box() Box {
	return Box{Center: r.Center, Extensions: r.Extensions.XYZ(), Rotation: r.Rotation}
}
