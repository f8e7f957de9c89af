package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Quad is a flat rectangle. Its canonical orientation lies in the local XZ
// plane facing +Y; Rotation orients it in the world.
type Quad struct {
	Center     math.Vec3
	Extensions math.Vec2 // width (local X), height (local Z)
	Rotation   math.Quat
	Reverse    bool // flips the face normal
}

// Normal returns the world-space face normal.
func (q Quad) Normal() math.Vec3 {
	n := q.Rotation.Rotate(math.UnitY)
	if q.Reverse {
		n = n.Neg()
	}
	return n
}

// Plane returns the supporting plane of the quad.
func (q Quad) Plane() Plane {
	return PlaneFromPoint(q.Normal(), q.Center)
}

// Contains reports whether p, assumed to lie on the quad's plane, falls
// inside the quad's bounds.
func (q Quad) Contains(p math.Vec3) bool {
	local := q.Rotation.Conjugate().Rotate(p.Sub(q.Center)).XZ()
	half := q.Extensions.Scale(0.5)
	return math.Abs(local.X) <= half.X+containsEpsilon && math.Abs(local.Y) <= half.Y+containsEpsilon
}

// containsEpsilon absorbs rotation round-off on face edges.
const containsEpsilon = 1e-5
