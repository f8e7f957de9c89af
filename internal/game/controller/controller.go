// Package controller drives the player through the Grounded/Jumping state
// machine, sweeping its collision sphere against the level every physics
// sub-step.
package controller

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/platformer/internal/game/entity"
	"github.com/Faultbox/platformer/internal/game/input"
	"github.com/Faultbox/platformer/internal/physics"
	"github.com/Faultbox/platformer/pkg/collision"
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// ErrNotPlayer is returned by New for actors without player attributes.
var ErrNotPlayer = errors.New("actor has no player attributes")

// Controller moves one player actor.
type Controller struct {
	player *entity.Actor
	attrs  *entity.PlayerAttrs
	body   *physics.RigidBody
	log    *zap.Logger

	normal math.Vec3 // contact normal of the last sub-step
}

// New creates a controller for player. The player must carry PlayerAttrs
// and a collider that can follow its transform.
func New(player *entity.Actor, params physics.Params, log *zap.Logger) (*Controller, error) {
	if player == nil || player.Player == nil {
		return nil, ErrNotPlayer
	}
	if !player.SyncCollider() {
		return nil, fmt.Errorf("player %q: unsupported collider %s", player.Name, player.Collider.Kind)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Controller{
		player: player,
		attrs:  player.Player,
		body:   physics.NewRigidBody(params),
		log:    log.With(zap.String("player", player.Name)),
	}, nil
}

func (c *Controller) State() entity.MoveState  { return c.attrs.State }
func (c *Controller) JumpForce() float32       { return c.attrs.JumpForce }
func (c *Controller) Velocity() math.Vec3      { return c.body.Velocity() }
func (c *Controller) Body() *physics.RigidBody { return c.body }
func (c *Controller) LastNormal() math.Vec3    { return c.normal }
func (c *Controller) Player() *entity.Actor    { return c.player }

// Update runs clock.SubSteps() fixed sub-steps of in against obstacles.
// Obstacles are tested in order and the first hit wins.
func (c *Controller) Update(in input.Snapshot, obstacles []*entity.Actor, clock *physics.FrameClock) {
	dt := clock.FixedDeltaTime()
	for i := clock.SubSteps(); i > 0; i-- {
		c.step(in, obstacles, dt)
	}
}

// Reset stops the player and puts it back on its feet.
func (c *Controller) Reset() {
	c.body.Reset()
	c.attrs.JumpForce = 0
	c.attrs.State = entity.Grounded
	c.normal = math.Vec3{}
}

func (c *Controller) step(in input.Snapshot, obstacles []*entity.Actor, dt float32) {
	c.horizontalVelocity(in, dt)
	c.body.Update(c.player.Transform.Position, dt)

	initiating := false
	switch c.attrs.State {
	case entity.Grounded:
		initiating = c.jump(in)
	case entity.Jumping:
		initiating = c.verticalMove(dt)
		c.body.ResetAcceleration()
	default:
		c.log.Error("invalid player state", zap.Uint8("state", uint8(c.attrs.State)))
	}

	c.normal = c.processCollisions(obstacles, initiating, dt)
	c.horizontalMove(c.normal, dt)
}

// horizontalVelocity adds the input to the current velocity, one speed
// unit per pressed direction with each axis capped at speed, then applies
// friction or air resistance.
func (c *Controller) horizontalVelocity(in input.Snapshot, dt float32) {
	v := c.body.Velocity()
	speed := c.attrs.Speed

	if in.Forward {
		v.Z = max(v.Z-speed, -speed)
	}
	if in.Backward {
		v.Z = min(v.Z+speed, speed)
	}
	if in.Left {
		v.X = max(v.X-speed, -speed)
	}
	if in.Right {
		v.X = min(v.X+speed, speed)
	}

	switch c.attrs.State {
	case entity.Grounded:
		c.body.ApplyVelocity(v, c.body.Friction(), dt)
	case entity.Jumping:
		c.body.ApplyVelocity(v, c.body.AirResistance(), dt)
	default:
		c.log.Error("invalid player state", zap.Uint8("state", uint8(c.attrs.State)))
	}
}

func (c *Controller) jump(in input.Snapshot) bool {
	if !in.Jump {
		return false
	}
	c.attrs.JumpForce = c.attrs.InitialJumpForce
	c.attrs.State = entity.Jumping
	c.log.Debug("jump", zap.Float32("force", c.attrs.JumpForce))
	return true
}

// verticalMove pushes the body up by the remaining jump force and decays
// it by gravity. It reports whether the jump is still being initiated.
func (c *Controller) verticalMove(dt float32) bool {
	initiating := c.attrs.JumpForce > 0

	c.body.ApplyForce(math.Vec3{Y: c.attrs.JumpForce}, dt)
	c.attrs.JumpForce = max(c.attrs.JumpForce+c.body.Params().Gravity, 0)

	return initiating
}

// processCollisions grounds the player on the first obstacle hit by the
// swept segment and returns its normal. Without a hit the vertical motion
// is committed and the player is airborne.
func (c *Controller) processCollisions(obstacles []*entity.Actor, initiating bool, dt float32) math.Vec3 {
	if !initiating {
		swept := c.body.Swept
		r := c.player.Radius()

		for _, o := range obstacles {
			if o == c.player || o.Collider.IsZero() {
				continue
			}
			if hit, ok := sweep(swept, o.Collider.Shape, r); ok {
				c.ground(hit.Normal)
				return hit.Normal
			}
		}
		c.attrs.State = entity.Jumping
	}

	c.player.Transform.Position.Y += c.body.Velocity().Y * dt
	c.player.SyncCollider()
	return math.Vec3{}
}

// sweep tests the player center path against obstacle grown by the player
// radius.
func sweep(s geometry.Segment, obstacle collision.Shape, r float32) (collision.Hit, bool) {
	return obstacle.Inflate(r).Segment(s)
}

func (c *Controller) ground(n math.Vec3) {
	if c.attrs.State != entity.Grounded {
		c.log.Debug("grounded", zap.Float32("nx", n.X), zap.Float32("ny", n.Y), zap.Float32("nz", n.Z))
	}
	c.attrs.JumpForce = 0
	c.attrs.State = entity.Grounded
	c.body.SupportReaction(n)
	c.player.SyncCollider()
}

// horizontalMove commits X and Z motion, except along an axis the contact
// normal has a component on.
func (c *Controller) horizontalMove(n math.Vec3, dt float32) {
	v := c.body.Velocity()
	if n.X == 0 {
		c.player.Transform.Position.X += v.X * dt
	}
	if n.Z == 0 {
		c.player.Transform.Position.Z += v.Z * dt
	}
	c.player.SyncCollider()
}
