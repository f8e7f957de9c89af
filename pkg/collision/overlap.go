package collision

import (
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// SphereSphere reports whether a and b overlap. Touching spheres overlap.
func SphereSphere(a, b geometry.Sphere) bool {
	r := a.Radius + b.Radius
	return a.Center.Sub(b.Center).SqrLength() <= r*r
}

// BoxSphere reports whether b and s overlap, and the point of b closest to
// the sphere center. The test is done in the box's local frame.
func BoxSphere(b geometry.Box, s geometry.Sphere) (math.Vec3, bool) {
	return boxSphere(b.Referential(), b.HalfExtensions(), s)
}

// BoxSphereAxisAligned is BoxSphere ignoring the box rotation.
func BoxSphereAxisAligned(b geometry.Box, s geometry.Sphere) (math.Vec3, bool) {
	return boxSphere(geometry.NewReferential(b.Center), b.HalfExtensions(), s)
}

func boxSphere(ref geometry.Referential, h math.Vec3, s geometry.Sphere) (math.Vec3, bool) {
	local := ref.Local(s.Center)
	r := s.Radius

	if math.Abs(local.X) > h.X+r || math.Abs(local.Y) > h.Y+r || math.Abs(local.Z) > h.Z+r {
		return math.Vec3{}, false
	}

	closest := math.Vec3{
		X: math.Clamp(local.X, -h.X, h.X),
		Y: math.Clamp(local.Y, -h.Y, h.Y),
		Z: math.Clamp(local.Z, -h.Z, h.Z),
	}
	if local.Sub(closest).SqrLength() > r*r {
		return math.Vec3{}, false
	}

	return ref.World(closest), true
}
