// Package geometry defines the collision primitives used by the movement core.
//
// All types are plain values. World-space parameters are stored directly;
// nothing caches derived data, so modifying a field takes effect on the next
// query.
package geometry

import "github.com/Faultbox/platformer/pkg/math"

// Segment is a directed line segment from Start to End.
// Dir is End-Start and is not normalized: its length is the distance
// covered when the parameter t goes from 0 to 1.
type Segment struct {
	Start math.Vec3
	End   math.Vec3
	Dir   math.Vec3
}

// NewSegment builds a segment and computes its direction.
// Always go through NewSegment after moving an endpoint.
func NewSegment(start, end math.Vec3) Segment {
	return Segment{Start: start, End: end, Dir: end.Sub(start)}
}

// PointAt returns Start + t*Dir.
func (s Segment) PointAt(t float32) math.Vec3 {
	return s.Start.Add(s.Dir.Scale(t))
}

// Length returns the segment length.
func (s Segment) Length() float32 {
	return s.Dir.Length()
}
