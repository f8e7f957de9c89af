package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

func TestKindString(t *testing.T) {
	for k := KindNone; k <= KindPlane; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("torus")
	assert.Error(t, err)
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestShapeDispatch(t *testing.T) {
	s := seg(0, 0, -10, 0, 0, 10)

	hit, ok := SphereShape(geometry.Sphere{Radius: 1}).Segment(s)
	require.True(t, ok)
	assert.InDelta(t, 0.45, hit.T, eps)

	box := BoxShape(geometry.Box{Extensions: math.Vec3{X: 2, Y: 2, Z: 2}, Rotation: math.QuatIdentity()})
	hit, ok = box.Segment(s)
	require.True(t, ok)
	requireVec(t, math.Vec3{Z: -1}, hit.Point)

	_, ok = Shape{}.Segment(s)
	assert.False(t, ok, "empty shape")
}

func TestShapeInflate(t *testing.T) {
	sph := SphereShape(geometry.Sphere{Radius: 1}).Inflate(0.5)
	assert.Equal(t, float32(1.5), sph.Sphere.Radius)

	box := BoxShape(geometry.Box{Extensions: math.Vec3{X: 2, Y: 2, Z: 2}, Rotation: math.QuatIdentity()}).Inflate(0.5)
	assert.Equal(t, math.Vec3{X: 3, Y: 3, Z: 3}, box.Box.Extensions)

	capsule := CapsuleShape(geometry.Capsule{Height: 2, Radius: 1}).Inflate(0.25)
	assert.Equal(t, float32(1.25), capsule.Capsule.Radius)

	plane := PlaneShape(geometry.NewPlane(math.UnitY, 1)).Inflate(0.5)
	assert.Equal(t, float32(1.5), plane.Plane.D)

	quad := QuadShape(geometry.Quad{Extensions: math.Vec2{X: 1, Y: 1}, Rotation: math.QuatIdentity(), Reverse: true}).Inflate(2)
	requireVec(t, math.Vec3{Y: -2}, quad.Quad.Center)
}

func TestShapeMoveTo(t *testing.T) {
	p := math.Vec3{X: 1, Y: 2, Z: 3}

	for _, s := range []Shape{
		SphereShape(geometry.Sphere{Radius: 1}),
		BoxShape(geometry.Box{Extensions: math.Vec3{X: 1, Y: 1, Z: 1}}),
		CapsuleShape(geometry.Capsule{Height: 1, Radius: 1}),
		CylinderShape(geometry.Cylinder{Height: 1, Radius: 1}),
		RoundedBoxShape(geometry.RoundedBox{}),
		QuadShape(geometry.Quad{}),
	} {
		assert.Equal(t, p, s.MoveTo(p).Center(), s.Kind.String())
	}
}

func TestShapeOverlapsSphere(t *testing.T) {
	ball := geometry.Sphere{Center: math.Vec3{X: 1.5}, Radius: 1}

	assert.True(t, SphereShape(geometry.Sphere{Radius: 1}).OverlapsSphere(ball))
	assert.True(t, BoxShape(geometry.Box{Extensions: math.Vec3{X: 2, Y: 2, Z: 2}, Rotation: math.QuatIdentity()}).OverlapsSphere(ball))
	assert.False(t, QuadShape(geometry.Quad{}).OverlapsSphere(ball))
}
