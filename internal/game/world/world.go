// Package world owns a level: its actors, the player controller and the
// frame clock, and the rules applied between physics frames.
package world

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/platformer/internal/config"
	"github.com/Faultbox/platformer/internal/game/controller"
	"github.com/Faultbox/platformer/internal/game/entity"
	"github.com/Faultbox/platformer/internal/game/input"
	"github.com/Faultbox/platformer/internal/physics"
	"github.com/Faultbox/platformer/pkg/math"
)

// ErrNoPlayer is returned by Step before SetPlayer.
var ErrNoPlayer = errors.New("world has no player")

// World is a running level.
type World struct {
	actors *entity.Manager
	ctrl   *controller.Controller
	clock  *physics.FrameClock
	params physics.Params
	log    *zap.Logger

	spawn      math.Vec3
	killPlaneY float32

	contacts map[uuid.UUID]bool // enemies overlapping the player last frame
	frame    uint64
	respawns int
}

// New creates an empty world using the physics, time and level settings
// of cfg. Actors from cfg.Level are not added; see FromLevel.
func New(cfg *config.Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}

	clock := physics.NewFrameClock(cfg.Time.TargetFrameRate)
	clock.TimeScale = cfg.Time.TimeScale
	clock.MaxSubSteps = cfg.Time.MaxSubSteps

	return &World{
		actors: entity.NewManager(),
		clock:  clock,
		params: physics.Params{
			Mass:          cfg.Physics.Mass,
			Friction:      cfg.Physics.Friction,
			AirResistance: cfg.Physics.AirResistance,
			Gravity:       cfg.Physics.Gravity,
			UseGravity:    cfg.Physics.UseGravity,
		},
		log:        log,
		spawn:      vec3(cfg.Level.Spawn),
		killPlaneY: cfg.Level.KillPlaneY,
		contacts:   make(map[uuid.UUID]bool),
	}
}

// Add adds an actor to the level.
func (w *World) Add(a *entity.Actor) {
	w.actors.Add(a)
}

// SetPlayer makes a the controlled player.
func (w *World) SetPlayer(a *entity.Actor) error {
	ctrl, err := controller.New(a, w.params, w.log)
	if err != nil {
		return fmt.Errorf("setting player: %w", err)
	}
	w.ctrl = ctrl
	w.actors.SetPlayer(a)
	return nil
}

// Player returns the controlled player, or nil.
func (w *World) Player() *entity.Actor {
	return w.actors.Player()
}

// Controller returns the player controller, or nil.
func (w *World) Controller() *controller.Controller {
	return w.ctrl
}

// Clock returns the frame clock.
func (w *World) Clock() *physics.FrameClock {
	return w.clock
}

// Actors returns every actor in insertion order.
func (w *World) Actors() []*entity.Actor {
	return w.actors.All()
}

// Obstacles returns every actor except the player, in insertion order.
func (w *World) Obstacles() []*entity.Actor {
	player := w.actors.Player()
	out := make([]*entity.Actor, 0, w.actors.Count())
	for _, a := range w.actors.All() {
		if a != player {
			out = append(out, a)
		}
	}
	return out
}

// Frame returns the number of frames stepped.
func (w *World) Frame() uint64 {
	return w.frame
}

// Respawns returns how many times the player was respawned.
func (w *World) Respawns() int {
	return w.respawns
}

// Step advances the world by one frame of elapsed wall time.
func (w *World) Step(in input.Snapshot, elapsed time.Duration) error {
	if w.ctrl == nil {
		return ErrNoPlayer
	}

	w.clock.Advance(elapsed)
	w.ctrl.Update(in, w.Obstacles(), w.clock)
	w.applyContactDamage()

	player := w.ctrl.Player()
	switch {
	case player.Position().Y < w.killPlaneY:
		w.Respawn("fell")
	case !player.Player.IsAlive():
		w.Respawn("died")
	}

	w.frame++
	return nil
}

// applyContactDamage hurts the player once for each enemy it starts
// overlapping this frame.
func (w *World) applyContactDamage() {
	player := w.ctrl.Player()
	sphere := player.BoundingSphere()

	for _, e := range w.actors.GetByTag(entity.TagEnemy) {
		if e.Enemy == nil || e.Collider.IsZero() {
			continue
		}

		touching := e.Collider.OverlapsSphere(sphere)
		if touching && !w.contacts[e.ID] {
			player.Player.TakeDamage(e.Enemy.Damage)
			w.log.Info("contact damage",
				zap.String("enemy", e.Name),
				zap.Int("damage", e.Enemy.Damage),
				zap.Int("health", player.Player.Health))
		}
		w.contacts[e.ID] = touching
	}
}

// Respawn puts the player back at the spawn point at full health.
func (w *World) Respawn(reason string) {
	if w.ctrl == nil {
		return
	}

	player := w.ctrl.Player()
	w.log.Info("respawn",
		zap.String("reason", reason),
		zap.Float32("y", player.Position().Y),
		zap.Uint64("frame", w.frame))

	player.SetPosition(w.spawn)
	player.Player.Heal(player.Player.MaxHealth)
	w.ctrl.Reset()
	clear(w.contacts)
	w.respawns++
}

// Digest hashes the player's position, velocity, state and health. Two
// worlds fed the same frames produce the same digest.
func (w *World) Digest() uint64 {
	if w.ctrl == nil {
		return 0
	}

	player := w.ctrl.Player()
	p, v := player.Position(), w.ctrl.Velocity()

	var buf [4*6 + 1 + 8]byte
	for i, f := range [6]float32{p.X, p.Y, p.Z, v.X, v.Y, v.Z} {
		binary.LittleEndian.PutUint32(buf[i*4:], gomath.Float32bits(f))
	}
	buf[24] = byte(w.ctrl.State())
	binary.LittleEndian.PutUint64(buf[25:], uint64(player.Player.Health))

	return xxhash.Sum64(buf[:])
}

func vec3(v config.Vec3) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
