// Package physics provides the point-mass rigid body, transforms and the
// fixed-step frame clock driving the character simulation.
package physics

import (
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// Gravity is the default vertical acceleration in units/s².
const Gravity float32 = -9.81

// Default body parameters.
const (
	DefaultMass          float32 = 1
	DefaultFriction      float32 = 7.5
	DefaultAirResistance float32 = 1.55
)

// Params configures a RigidBody.
type Params struct {
	Mass          float32
	Friction      float32 // horizontal decay rate while grounded
	AirResistance float32 // horizontal decay rate while airborne
	Gravity       float32
	UseGravity    bool
}

// DefaultParams returns the standard body parameters.
func DefaultParams() Params {
	return Params{
		Mass:          DefaultMass,
		Friction:      DefaultFriction,
		AirResistance: DefaultAirResistance,
		Gravity:       Gravity,
		UseGravity:    true,
	}
}

// RigidBody is a point mass. It carries no position of its own: the owning
// actor's transform is passed to Update every step.
type RigidBody struct {
	velocity     math.Vec3
	acceleration math.Vec3
	params       Params

	// Swept is the segment from the current position to the predicted
	// position one step ahead, rebuilt by Update.
	Swept geometry.Segment
}

// NewRigidBody creates a body at rest. A non-positive mass falls back to
// DefaultMass.
func NewRigidBody(p Params) *RigidBody {
	if p.Mass <= 0 {
		p.Mass = DefaultMass
	}
	rb := &RigidBody{params: p}
	rb.ResetAcceleration()
	return rb
}

func (rb *RigidBody) Velocity() math.Vec3     { return rb.velocity }
func (rb *RigidBody) Acceleration() math.Vec3 { return rb.acceleration }
func (rb *RigidBody) Mass() float32           { return rb.params.Mass }
func (rb *RigidBody) Friction() float32       { return rb.params.Friction }
func (rb *RigidBody) AirResistance() float32  { return rb.params.AirResistance }
func (rb *RigidBody) Params() Params          { return rb.params }

// SetVelocity overwrites the velocity.
func (rb *RigidBody) SetVelocity(v math.Vec3) {
	rb.velocity = v
}

// ApplyForce accumulates f/mass into the acceleration, then integrates the
// whole acceleration into the velocity over dt.
func (rb *RigidBody) ApplyForce(f math.Vec3, dt float32) {
	rb.acceleration = rb.acceleration.Add(f.Div(rb.params.Mass))
	rb.velocity = rb.velocity.Add(rb.acceleration.Scale(dt))
}

// ApplyVelocity decays the X and Z components of v by resistance over dt
// and stores the result as the body velocity. A component never changes
// sign: once the decay would cross zero it is set to zero. Y is kept as is.
func (rb *RigidBody) ApplyVelocity(v math.Vec3, resistance, dt float32) {
	v.X = decay(v.X, resistance*dt)
	v.Z = decay(v.Z, resistance*dt)
	rb.velocity = v
}

func decay(c, k float32) float32 {
	next := c - c*k
	if (c > 0 && next <= 0) || (c < 0 && next >= 0) {
		return 0
	}
	return next
}

// ResetAcceleration restores the acceleration to gravity alone.
func (rb *RigidBody) ResetAcceleration() {
	if !rb.params.UseGravity {
		rb.acceleration = math.Vec3{}
		return
	}
	rb.acceleration = math.Vec3{Y: rb.params.Gravity}
}

// SupportReaction removes the velocity component along the contact normal n.
func (rb *RigidBody) SupportReaction(n math.Vec3) {
	rb.velocity = rb.velocity.Sub(n.Scale(rb.velocity.Dot(n)))
}

// Update rebuilds Swept from position using the velocity predicted one
// step ahead. Neither velocity nor acceleration change.
func (rb *RigidBody) Update(position math.Vec3, dt float32) geometry.Segment {
	next := rb.velocity.Add(rb.acceleration.Scale(dt))
	rb.Swept = geometry.NewSegment(position, position.Add(next.Scale(dt)))
	return rb.Swept
}

// Reset stops the body.
func (rb *RigidBody) Reset() {
	rb.velocity = math.Vec3{}
	rb.ResetAcceleration()
	rb.Swept = geometry.Segment{}
}
