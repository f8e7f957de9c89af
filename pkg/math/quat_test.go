package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	if math.Abs(float64(n.Length()-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", n.Length())
	}

	// Normalizing twice changes nothing
	nn := n.Normalize()
	if abs(nn.X-n.X) > 1e-6 || abs(nn.Y-n.Y) > 1e-6 || abs(nn.Z-n.Z) > 1e-6 || abs(nn.W-n.W) > 1e-6 {
		t.Errorf("Normalize is not idempotent: %v vs %v", nn, n)
	}
}

func TestQuatNormalizeZero(t *testing.T) {
	if got := (Quat{}).Normalize(); got != (Quat{}) {
		t.Errorf("Normalize(0) = %v, want zero quaternion", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}

	// Unnormalized axis gives the same rotation
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 5, Z: 0}, float32(math.Pi/2))
	if abs(q2.Y-q.Y) > 1e-6 || abs(q2.W-q.W) > 1e-6 {
		t.Errorf("axis scale changed the rotation: %v vs %v", q2, q)
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		in    Vec3
		want  Vec3
	}{
		{"up about Z +90", UnitZ, Radians(90), UnitY, Vec3{-1, 0, 0}},
		{"up about X -90", UnitX, Radians(-90), UnitY, Vec3{0, 0, -1}},
		{"x about Y +90", UnitY, Radians(90), UnitX, Vec3{0, 0, -1}},
		{"identity", UnitY, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromAxisAngle(tt.axis, tt.angle).Rotate(tt.in)
			if !got.ApproxEqual(tt.want, 0.0001) {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuatRotateRoundTrip(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, -1}, 1.234)
	v := Vec3{0.3, -4, 2.5}

	back := q.Conjugate().Rotate(q.Rotate(v))
	if !back.ApproxEqual(v, 0.0001) {
		t.Errorf("round trip = %v, want %v", back, v)
	}
}

func TestQuatRotateMatchesMathgl(t *testing.T) {
	axis := Vec3{0.2, 1, -0.4}
	angle := float32(2.1)
	v := Vec3{1.5, -0.5, 3}

	got := QuatFromAxisAngle(axis, angle).Rotate(v)

	ref := mgl32.QuatRotate(angle, mgl32.Vec3{axis.X, axis.Y, axis.Z}.Normalize())
	want := ref.Rotate(mgl32.Vec3{v.X, v.Y, v.Z})

	if !got.ApproxEqual(Vec3{want[0], want[1], want[2]}, 0.0001) {
		t.Errorf("Rotate = %v, mathgl = %v", got, want)
	}
}

func TestQuatMulOrder(t *testing.T) {
	a := QuatFromAxisAngle(UnitY, Radians(90))
	b := QuatFromAxisAngle(UnitZ, Radians(90))

	// a.Mul(b) applies b then a
	got := a.Mul(b).Rotate(UnitX)
	want := a.Rotate(b.Rotate(UnitX))
	if !got.ApproxEqual(want, 0.0001) {
		t.Errorf("a*b rotate = %v, want %v", got, want)
	}

	// Hamilton product is not commutative
	other := b.Mul(a).Rotate(UnitX)
	if other.ApproxEqual(got, 0.0001) {
		t.Errorf("a*b and b*a should differ, both gave %v", got)
	}

	ma := mgl32.QuatRotate(Radians(90), mgl32.Vec3{0, 1, 0})
	mb := mgl32.QuatRotate(Radians(90), mgl32.Vec3{0, 0, 1})
	ref := ma.Mul(mb)
	p := a.Mul(b)
	if abs(p.W-ref.W) > 0.0001 || abs(p.X-ref.V[0]) > 0.0001 || abs(p.Y-ref.V[1]) > 0.0001 || abs(p.Z-ref.V[2]) > 0.0001 {
		t.Errorf("Mul = %v, mathgl = %v", p, ref)
	}
}

func TestQuatToMat4(t *testing.T) {
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}

	// Matrix and quaternion rotate points the same way
	r := QuatFromAxisAngle(Vec3{1, 1, 0}, 0.7)
	p := Vec3{2, -1, 0.5}
	if got, want := r.ToMat4().TransformPoint(p), r.Rotate(p); !got.ApproxEqual(want, 0.0001) {
		t.Errorf("ToMat4 point = %v, Rotate = %v", got, want)
	}
}
