package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/platformer/internal/game/entity"
	"github.com/Faultbox/platformer/internal/game/input"
	"github.com/Faultbox/platformer/internal/physics"
	"github.com/Faultbox/platformer/pkg/collision"
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

const radius = 0.5

// floor is a box whose top face is the plane y = 0.
func floor() *entity.Actor {
	return entity.NewPlatform("floor", collision.BoxShape(geometry.Box{
		Center:     math.Vec3{Y: -1},
		Extensions: math.Vec3{X: 20, Y: 2, Z: 20},
		Rotation:   math.QuatIdentity(),
	}))
}

func newPlayer(t *testing.T, y float32) (*Controller, *entity.Actor) {
	t.Helper()
	p := entity.NewPlayer("hero", math.Vec3{Y: y}, radius,
		entity.NewPlayerAttrs(100, entity.DefaultSpeed, entity.DefaultInitialJumpForce))
	c, err := New(p, physics.DefaultParams(), zap.NewNop())
	require.NoError(t, err)
	return c, p
}

// oneStep is a clock running a single sub-step per frame.
func oneStep() *physics.FrameClock {
	clock := physics.NewFrameClock(60)
	clock.Advance(clock.FixedStep())
	return clock
}

func run(c *Controller, frames int, in input.Snapshot, obstacles []*entity.Actor) {
	clock := oneStep()
	for i := 0; i < frames; i++ {
		c.Update(in, obstacles, clock)
	}
}

func TestNewRejectsNonPlayer(t *testing.T) {
	_, err := New(floor(), physics.DefaultParams(), nil)
	assert.ErrorIs(t, err, ErrNotPlayer)

	_, err = New(nil, physics.DefaultParams(), nil)
	assert.ErrorIs(t, err, ErrNotPlayer)

	p := entity.NewPlayer("flat", math.Vec3{}, radius, entity.NewPlayerAttrs(1, 1, 1))
	p.Collider = entity.Collider{Shape: collision.PlaneShape(geometry.NewPlane(math.UnitY, 0))}
	_, err = New(p, physics.DefaultParams(), nil)
	assert.Error(t, err)
}

func TestFallAndLand(t *testing.T) {
	c, p := newPlayer(t, 2)
	level := []*entity.Actor{floor()}

	run(c, 1, input.Snapshot{}, level)
	assert.Equal(t, entity.Jumping, c.State(), "nothing under the player")

	run(c, 120, input.Snapshot{}, level)
	assert.Equal(t, entity.Grounded, c.State())
	assert.InDelta(t, radius, p.Position().Y, 0.01)
	assert.GreaterOrEqual(t, p.Position().Y, float32(radius))
	assert.InDelta(t, 0, c.Velocity().Y, 1e-6)
	assert.Equal(t, math.UnitY, c.LastNormal())
	assert.Equal(t, p.Position(), p.Collider.Center(), "collider follows the transform")
}

func TestRestingStaysGrounded(t *testing.T) {
	c, p := newPlayer(t, radius+0.001)
	level := []*entity.Actor{floor()}

	for i := 0; i < 60; i++ {
		run(c, 1, input.Snapshot{}, level)
		require.Equalf(t, entity.Grounded, c.State(), "frame %d", i)
	}
	assert.Equal(t, float32(radius+0.001), p.Position().Y)
}

func TestJump(t *testing.T) {
	c, p := newPlayer(t, radius+0.001)
	level := []*entity.Actor{floor()}

	run(c, 1, input.Snapshot{Jump: true}, level)
	assert.Equal(t, entity.Jumping, c.State())
	assert.Equal(t, entity.DefaultInitialJumpForce, c.JumpForce())

	peak := p.Position().Y
	for i := 0; i < 30; i++ {
		run(c, 1, input.Snapshot{}, level)
		peak = max(peak, p.Position().Y)
	}
	assert.Zero(t, c.JumpForce(), "jump force decays to zero")
	assert.Greater(t, peak, float32(1))

	run(c, 180, input.Snapshot{}, level)
	assert.Equal(t, entity.Grounded, c.State())
	assert.InDelta(t, radius, p.Position().Y, 0.01)
}

func TestHeldJumpDoesNotRetrigger(t *testing.T) {
	c, _ := newPlayer(t, radius+0.001)
	level := []*entity.Actor{floor()}
	clock := oneStep()

	in := input.New()
	in.SetHeld(input.KeyJump)

	jumps := 0
	for i := 0; i < 300; i++ {
		c.Update(in.Snapshot(), level, clock)
		if c.JumpForce() == entity.DefaultInitialJumpForce {
			jumps++
		}
	}
	assert.Equal(t, 1, jumps)
	assert.Equal(t, entity.Grounded, c.State())
}

func TestWalk(t *testing.T) {
	c, p := newPlayer(t, radius+0.001)
	level := []*entity.Actor{floor()}

	run(c, 1, input.Snapshot{Right: true}, level)
	assert.InDelta(t, 2.625, c.Velocity().X, 1e-5)
	assert.InDelta(t, 2.625/60, p.Position().X, 1e-5)
	assert.Equal(t, entity.Grounded, c.State())

	for i := 0; i < 120; i++ {
		run(c, 1, input.Snapshot{Right: true, Forward: true}, level)
		v := c.Velocity()
		require.LessOrEqual(t, v.X, entity.DefaultSpeed)
		require.GreaterOrEqual(t, v.Z, -entity.DefaultSpeed)
	}
	assert.Greater(t, p.Position().X, float32(5))
	assert.Less(t, p.Position().Z, float32(-5), "forward is -Z")

	// Friction stops the player once the keys are released
	run(c, 120, input.Snapshot{}, level)
	assert.InDelta(t, 0, c.Velocity().X, 1e-3)
	assert.InDelta(t, 0, c.Velocity().Z, 1e-3)
}

func TestOpposingKeysCancel(t *testing.T) {
	c, p := newPlayer(t, radius+0.001)

	run(c, 10, input.Snapshot{Left: true, Right: true}, []*entity.Actor{floor()})
	assert.Zero(t, c.Velocity().X)
	assert.Zero(t, p.Position().X)
}

func TestWallBlocksHorizontalMotion(t *testing.T) {
	c, p := newPlayer(t, radius+0.001)
	wall := entity.NewPlatform("wall", collision.BoxShape(geometry.Box{
		Center:     math.Vec3{X: 2, Y: 1.5},
		Extensions: math.Vec3{X: 1, Y: 3, Z: 20},
		Rotation:   math.QuatIdentity(),
	}))
	// wall first: tests stop at the first hit
	level := []*entity.Actor{wall, floor()}

	run(c, 120, input.Snapshot{Right: true}, level)

	x := p.Position().X
	assert.LessOrEqual(t, x, float32(1))
	assert.Greater(t, x, float32(0.9))
	assert.Truef(t, c.LastNormal().ApproxEqual(math.UnitX.Neg(), 1e-5), "normal %v", c.LastNormal())
	assert.Equal(t, entity.Grounded, c.State())
}

func TestLandOnSphere(t *testing.T) {
	c, p := newPlayer(t, 3)
	ball := entity.NewEnemy("ball", collision.SphereShape(geometry.Sphere{Radius: 1}), 0)

	run(c, 120, input.Snapshot{}, []*entity.Actor{ball})
	assert.Equal(t, entity.Grounded, c.State())
	assert.InDelta(t, 1+radius, p.Position().Y, 0.01)
}

func TestNoObstaclesFalls(t *testing.T) {
	c, p := newPlayer(t, 0)

	run(c, 30, input.Snapshot{}, nil)
	assert.Equal(t, entity.Jumping, c.State())
	assert.Less(t, p.Position().Y, float32(-0.5))
	assert.Less(t, c.Velocity().Y, float32(-4))
}

func TestSkipsSelfAndEmptyColliders(t *testing.T) {
	c, p := newPlayer(t, 0)
	ghost := &entity.Actor{Name: "ghost"}

	run(c, 10, input.Snapshot{}, []*entity.Actor{p, ghost})
	assert.Equal(t, entity.Jumping, c.State())
	assert.Less(t, p.Position().Y, float32(0))
}

func TestSubStepsMatchFrames(t *testing.T) {
	a, pa := newPlayer(t, 2)
	b, pb := newPlayer(t, 2)
	level := []*entity.Actor{floor()}
	in := input.Snapshot{Right: true}

	run(a, 3, in, level)

	clock := physics.NewFrameClock(60)
	clock.Advance(50 * time.Millisecond)
	require.Equal(t, 3, clock.SubSteps())
	b.Update(in, level, clock)

	assert.Equal(t, pa.Position(), pb.Position())
	assert.Equal(t, a.Velocity(), b.Velocity())
}

func TestInvalidStateIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := entity.NewPlayer("hero", math.Vec3{Y: radius + 0.001}, radius, entity.NewPlayerAttrs(100, 3, 80))
	c, err := New(p, physics.DefaultParams(), zap.New(core))
	require.NoError(t, err)

	p.Player.State = entity.MoveState(9)
	run(c, 1, input.Snapshot{Right: true}, []*entity.Actor{floor()})

	assert.Equal(t, 2, logs.FilterMessage("invalid player state").Len())
	assert.Zero(t, c.Velocity().X, "no resistance branch ran")
	assert.Equal(t, entity.Grounded, c.State(), "contact still grounds the player")
}

func TestReset(t *testing.T) {
	c, _ := newPlayer(t, radius+0.001)
	run(c, 1, input.Snapshot{Jump: true}, []*entity.Actor{floor()})
	run(c, 2, input.Snapshot{}, []*entity.Actor{floor()})

	c.Reset()
	assert.Equal(t, entity.Grounded, c.State())
	assert.Zero(t, c.JumpForce())
	assert.Equal(t, math.Vec3{}, c.Velocity())
}
