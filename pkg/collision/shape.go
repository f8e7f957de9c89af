package collision

import (
	"fmt"

	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// Kind identifies which primitive a Shape carries.
type Kind uint8

const (
	KindNone Kind = iota
	KindSphere
	KindBox
	KindCapsule
	KindCylinder
	KindRoundedBox
	KindQuad
	KindPlane
)

var kindNames = [...]string{
	KindNone:       "none",
	KindSphere:     "sphere",
	KindBox:        "box",
	KindCapsule:    "capsule",
	KindCylinder:   "cylinder",
	KindRoundedBox: "rounded_box",
	KindQuad:       "quad",
	KindPlane:      "plane",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindNone, fmt.Errorf("unknown shape kind %q", s)
}

// Shape is a tagged union over the collision primitives. Only the field
// matching Kind is meaningful. The zero Shape has KindNone and never
// collides.
type Shape struct {
	Kind       Kind
	Sphere     geometry.Sphere
	Box        geometry.Box
	Capsule    geometry.Capsule
	Cylinder   geometry.Cylinder
	RoundedBox geometry.RoundedBox
	Quad       geometry.Quad
	Plane      geometry.Plane
}

// SphereShape wraps a sphere.
func SphereShape(s geometry.Sphere) Shape {
	return Shape{Kind: KindSphere, Sphere: s}
}

// BoxShape wraps an oriented box.
func BoxShape(b geometry.Box) Shape {
	return Shape{Kind: KindBox, Box: b}
}

// CapsuleShape wraps a capsule.
func CapsuleShape(c geometry.Capsule) Shape {
	return Shape{Kind: KindCapsule, Capsule: c}
}

// CylinderShape wraps a finite cylinder.
func CylinderShape(c geometry.Cylinder) Shape {
	return Shape{Kind: KindCylinder, Cylinder: c}
}

// RoundedBoxShape wraps a rounded box.
func RoundedBoxShape(r geometry.RoundedBox) Shape {
	return Shape{Kind: KindRoundedBox, RoundedBox: r}
}

// QuadShape wraps a quad.
func QuadShape(q geometry.Quad) Shape {
	return Shape{Kind: KindQuad, Quad: q}
}

// PlaneShape wraps an infinite plane. Planes ignore MoveTo.
func PlaneShape(p geometry.Plane) Shape {
	return Shape{Kind: KindPlane, Plane: p}
}

// Center returns the shape's reference point. Planes report their closest
// point to the origin.
func (s Shape) Center() math.Vec3 {
	switch s.Kind {
	case KindSphere:
		return s.Sphere.Center
	case KindBox:
		return s.Box.Center
	case KindCapsule:
		return s.Capsule.Center
	case KindCylinder:
		return s.Cylinder.Center
	case KindRoundedBox:
		return s.RoundedBox.Center
	case KindQuad:
		return s.Quad.Center
	case KindPlane:
		return s.Plane.Point()
	}
	return math.Vec3{}
}

// MoveTo returns the shape translated so that its center is p. Planes are
// infinite and returned unchanged.
func (s Shape) MoveTo(p math.Vec3) Shape {
	switch s.Kind {
	case KindSphere:
		s.Sphere.Center = p
	case KindBox:
		s.Box.Center = p
	case KindCapsule:
		s.Capsule.Center = p
	case KindCylinder:
		s.Cylinder.Center = p
	case KindRoundedBox:
		s.RoundedBox.Center = p
	case KindQuad:
		s.Quad.Center = p
	}
	return s
}

// Inflate grows the shape by r on every side, so that a point swept against
// the result approximates a sphere of radius r swept against s. Boxes grow
// by 2r per edge. Quads and planes are one-sided and move r along their
// normal.
func (s Shape) Inflate(r float32) Shape {
	switch s.Kind {
	case KindSphere:
		s.Sphere = s.Sphere.Inflate(r)
	case KindBox:
		s.Box = s.Box.Expand(r)
	case KindCapsule:
		s.Capsule.Radius += r
	case KindCylinder:
		s.Cylinder.Radius += r
	case KindRoundedBox:
		e := s.RoundedBox.Extensions
		s.RoundedBox = geometry.NewRoundedBox(s.RoundedBox.Center,
			math.Vec4{X: e.X + 2*r, Y: e.Y + 2*r, Z: e.Z + 2*r, W: e.W + r},
			s.RoundedBox.Rotation)
	case KindQuad:
		s.Quad.Center = s.Quad.Center.Add(s.Quad.Normal().Scale(r))
	case KindPlane:
		s.Plane.D += r
	}
	return s
}

// Segment intersects seg with the shape using the matching segment test.
func (s Shape) Segment(seg geometry.Segment) (Hit, bool) {
	switch s.Kind {
	case KindSphere:
		return SegmentSphere(seg, s.Sphere)
	case KindBox:
		return SegmentBox(seg, s.Box)
	case KindCapsule:
		return SegmentCapsule(seg, s.Capsule)
	case KindCylinder:
		return SegmentCylinder(seg, s.Cylinder)
	case KindRoundedBox:
		return SegmentRoundedBox(seg, s.RoundedBox)
	case KindQuad:
		return SegmentQuad(seg, s.Quad)
	case KindPlane:
		return SegmentPlane(seg, s.Plane)
	}
	return Hit{}, false
}

// OverlapsSphere reports whether sph overlaps the shape. Only spheres and
// boxes take part in overlap tests; other kinds report false.
func (s Shape) OverlapsSphere(sph geometry.Sphere) bool {
	switch s.Kind {
	case KindSphere:
		return SphereSphere(s.Sphere, sph)
	case KindBox:
		_, ok := BoxSphere(s.Box, sph)
		return ok
	}
	return false
}
