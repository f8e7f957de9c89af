// Package collision implements analytic segment-vs-primitive intersection
// tests and static overlap tests.
//
// Segment tests return the first intersection with the segment parameter
// t in [0, 1]. Degenerate input (zero-length segments, segments parallel to
// a plane, flat boxes) reports no hit rather than an error.
package collision

import (
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// Hit describes a segment intersection.
type Hit struct {
	Point  math.Vec3 // world-space intersection point
	Normal math.Vec3 // unit surface normal at Point
	T      float32   // segment parameter of Point
}

func inRange(t float32) bool {
	return t >= 0 && t <= 1
}

// SegmentPlane intersects s with plane p. The reported normal is the plane
// normal as stored, whichever side the segment comes from.
func SegmentPlane(s geometry.Segment, p geometry.Plane) (Hit, bool) {
	denom := s.Dir.Dot(p.Normal)
	if denom == 0 {
		return Hit{}, false
	}

	t := p.Point().Sub(s.Start).Dot(p.Normal) / denom
	if !inRange(t) {
		return Hit{}, false
	}

	return Hit{Point: s.PointAt(t), Normal: p.Normal, T: t}, true
}

// SegmentSphere intersects s with the surface of sph, entering from outside.
func SegmentSphere(s geometry.Segment, sph geometry.Sphere) (Hit, bool) {
	oc := s.Start.Sub(sph.Center)

	a := s.Dir.SqrLength()
	if a == 0 {
		return Hit{}, false
	}
	b := 2 * oc.Dot(s.Dir)
	c := oc.SqrLength() - sph.Radius*sph.Radius

	delta := b*b - 4*a*c
	if delta < 0 {
		return Hit{}, false
	}

	// Smaller root: first contact along the segment
	t := (-b - math.Sqrt(delta)) / (2 * a)
	if !inRange(t) {
		return Hit{}, false
	}

	p := s.PointAt(t)
	return Hit{Point: p, Normal: p.Sub(sph.Center).Normalize(), T: t}, true
}

// SegmentInfiniteCylinder intersects s with the infinite cylinder sharing
// c's centerline and radius.
func SegmentInfiniteCylinder(s geometry.Segment, c geometry.Cylinder) (Hit, bool) {
	a, b := c.Axis()
	return segmentInfiniteCylinder(s, a, b, c.Radius)
}

// parallelEpsilon is the squared sine below which a segment is treated as
// parallel to a cylinder axis.
const parallelEpsilon = 1e-6

func segmentInfiniteCylinder(s geometry.Segment, axisA, axisB math.Vec3, radius float32) (Hit, bool) {
	pq := axisB.Sub(axisA)
	pa := s.Start.Sub(axisA)

	pqpq := pq.Dot(pq)
	pqd := pq.Dot(s.Dir)
	papq := pa.Dot(pq)

	dd := s.Dir.Dot(s.Dir)
	qa := pqpq*dd - pqd*pqd
	if qa <= parallelEpsilon*pqpq*dd {
		// parallel to the axis, or zero-length segment
		return Hit{}, false
	}
	qb := pqpq*pa.Dot(s.Dir) - pqd*papq
	qc := pqpq*(pa.Dot(pa)-radius*radius) - papq*papq

	delta := qb*qb - qa*qc
	if delta < 0 {
		return Hit{}, false
	}

	t := (-qb - math.Sqrt(delta)) / qa
	if !inRange(t) {
		return Hit{}, false
	}

	p := s.PointAt(t)
	return Hit{Point: p, Normal: radial(p, axisA, pq), T: t}, true
}

// radial returns the unit vector from the closest point on the axis line
// through a with direction pq to p.
func radial(p, a, pq math.Vec3) math.Vec3 {
	pm := p.Sub(a)
	onAxis := pq.Scale(pm.Dot(pq) / pq.Dot(pq))
	return pm.Sub(onAxis).Normalize()
}

// SegmentCylinder intersects s with the finite cylinder c, end caps included.
func SegmentCylinder(s geometry.Segment, c geometry.Cylinder) (Hit, bool) {
	if hit, ok := segmentCylinderSide(s, c); ok {
		return hit, true
	}

	axisA, axisB := c.Axis()
	pq := axisB.Sub(axisA)

	// Outside the body: try the end discs, nearest first
	r2 := c.Radius * c.Radius
	best, found := Hit{}, false
	discs := [2]struct {
		plane  geometry.Plane
		center math.Vec3
	}{
		{geometry.PlaneFromPoint(pq.Neg(), axisA), axisA},
		{geometry.PlaneFromPoint(pq, axisB), axisB},
	}
	for _, d := range discs {
		hit, ok := SegmentPlane(s, d.plane)
		if !ok || hit.Point.Sub(d.center).SqrLength() >= r2 {
			continue
		}
		if !found || hit.T < best.T {
			best, found = hit, true
		}
	}
	return best, found
}

// segmentCylinderSide keeps infinite-cylinder hits whose projection on the
// axis falls between the two end points.
func segmentCylinderSide(s geometry.Segment, c geometry.Cylinder) (Hit, bool) {
	axisA, axisB := c.Axis()
	hit, ok := segmentInfiniteCylinder(s, axisA, axisB, c.Radius)
	if !ok {
		return Hit{}, false
	}

	pq := axisB.Sub(axisA)
	along := hit.Point.Sub(axisA).Dot(pq)
	if along < 0 || along > pq.Dot(pq) {
		return Hit{}, false
	}
	return hit, true
}

// SegmentQuad intersects s with the quad q.
func SegmentQuad(s geometry.Segment, q geometry.Quad) (Hit, bool) {
	hit, ok := SegmentPlane(s, q.Plane())
	if !ok || !q.Contains(hit.Point) {
		return Hit{}, false
	}
	return hit, true
}

// SegmentBox intersects s with the faces of b and returns the face hit
// nearest to the segment start. Ties go to the earlier face in the order
// +X, -X, +Y, -Y, +Z, -Z.
func SegmentBox(s geometry.Segment, b geometry.Box) (Hit, bool) {
	return SegmentBoxMargin(s, b, 0)
}

// SegmentBoxMargin is SegmentBox with every face plane pulled inward by
// margin. Face sizes are kept, so the result approximates a box with
// rounded edges of radius margin.
func SegmentBoxMargin(s geometry.Segment, b geometry.Box, margin float32) (Hit, bool) {
	best, found := Hit{}, false
	for _, face := range b.Faces(margin) {
		hit, ok := SegmentQuad(s, face)
		if ok && (!found || hit.T < best.T) {
			best, found = hit, true
		}
	}
	return best, found
}

// SegmentCapsule tests the cylindrical side first, then the cap at
// +Height/2, then the cap at -Height/2. The first shape hit wins, even if a
// later one is nearer.
func SegmentCapsule(s geometry.Segment, c geometry.Capsule) (Hit, bool) {
	if hit, ok := segmentCylinderSide(s, c.Body()); ok {
		return hit, true
	}

	top, bottom := c.Caps()
	if hit, ok := SegmentSphere(s, top); ok {
		return hit, true
	}
	if hit, ok := SegmentSphere(s, bottom); ok {
		return hit, true
	}
	return Hit{}, false
}

// SegmentRoundedBox intersects s with rb using the margin-box approximation.
// Segments not heading toward the box center are rejected early.
func SegmentRoundedBox(s geometry.Segment, rb geometry.RoundedBox) (Hit, bool) {
	if s.Dir.Dot(rb.Center.Sub(s.Start)) <= 0 {
		return Hit{}, false
	}
	// TODO: solve the rounded edges as capsules instead of the margin box
	return SegmentBoxMargin(s, rb.Box(), rb.Radius())
}
