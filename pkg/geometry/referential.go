package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Referential is an orthonormal frame anchored at Origin.
type Referential struct {
	Origin  math.Vec3
	I, J, K math.Vec3
}

// NewReferential returns a frame at origin aligned with the world axes.
func NewReferential(origin math.Vec3) Referential {
	return Referential{Origin: origin, I: math.UnitX, J: math.UnitY, K: math.UnitZ}
}

// Rotated returns the frame with its axes rotated by q.
func (r Referential) Rotated(q math.Quat) Referential {
	return Referential{
		Origin: r.Origin,
		I:      q.Rotate(r.I),
		J:      q.Rotate(r.J),
		K:      q.Rotate(r.K),
	}
}

// Local expresses the world point p in this frame.
func (r Referential) Local(p math.Vec3) math.Vec3 {
	op := p.Sub(r.Origin)
	return math.Vec3{X: op.Dot(r.I), Y: op.Dot(r.J), Z: op.Dot(r.K)}
}

// World converts a local point back to world space.
func (r Referential) World(local math.Vec3) math.Vec3 {
	return r.Origin.
		Add(r.I.Scale(local.X)).
		Add(r.J.Scale(local.Y)).
		Add(r.K.Scale(local.Z))
}
