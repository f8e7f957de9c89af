package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/platformer/internal/config"
	"github.com/Faultbox/platformer/internal/game/entity"
	"github.com/Faultbox/platformer/internal/physics"
	"github.com/Faultbox/platformer/pkg/collision"
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// FromLevel builds a world holding the actors of cfg.Level and a player
// at the spawn point.
func FromLevel(cfg *config.Config, log *zap.Logger) (*World, error) {
	w := New(cfg, log)

	for i, ac := range cfg.Level.Actors {
		a, err := actorFromConfig(ac)
		if err != nil {
			return nil, fmt.Errorf("level %s: actor %d (%s): %w", cfg.Level.Name, i, ac.Name, err)
		}
		w.Add(a)
	}

	pc := cfg.Player
	player := entity.NewPlayer(pc.Name, w.spawn, pc.Radius,
		entity.NewPlayerAttrs(pc.MaxHealth, pc.Speed, pc.InitialJumpForce))
	if err := w.SetPlayer(player); err != nil {
		return nil, err
	}

	w.log.Info("level loaded",
		zap.String("level", cfg.Level.Name),
		zap.Int("actors", len(cfg.Level.Actors)))
	return w, nil
}

func actorFromConfig(ac config.ActorConfig) (*entity.Actor, error) {
	tag, err := entity.ParseTag(ac.Tag)
	if err != nil {
		return nil, err
	}
	shape, err := shapeFromConfig(ac.Shape)
	if err != nil {
		return nil, err
	}

	var a *entity.Actor
	switch tag {
	case entity.TagPlatform:
		a = entity.NewPlatform(ac.Name, shape)
	case entity.TagEnemy:
		a = entity.NewEnemy(ac.Name, shape, ac.Damage)
	case entity.TagUnassigned:
		a = entity.NewActor(ac.Name, tag, shape)
	default:
		return nil, fmt.Errorf("tag %s cannot be placed in a level", tag)
	}
	a.Transform.Rotation = radians(ac.Shape.Rotation)
	return a, nil
}

func shapeFromConfig(sc config.ShapeConfig) (collision.Shape, error) {
	kind, err := collision.ParseKind(sc.Kind)
	if err != nil {
		return collision.Shape{}, err
	}

	center := vec3(sc.Center)
	rot := physics.Transform{Rotation: radians(sc.Rotation)}.Quat()

	switch kind {
	case collision.KindSphere:
		return collision.SphereShape(geometry.Sphere{Center: center, Radius: sc.Radius}), nil
	case collision.KindBox:
		return collision.BoxShape(geometry.Box{Center: center, Extensions: vec3(sc.Extensions), Rotation: rot}), nil
	case collision.KindCapsule:
		return collision.CapsuleShape(geometry.Capsule{Center: center, Height: sc.Height, Radius: sc.Radius, Rotation: rot}), nil
	case collision.KindCylinder:
		return collision.CylinderShape(geometry.Cylinder{Center: center, Height: sc.Height, Radius: sc.Radius, Rotation: rot}), nil
	case collision.KindRoundedBox:
		ext := math.NewVec4(vec3(sc.Extensions), sc.Radius)
		return collision.RoundedBoxShape(geometry.NewRoundedBox(center, ext, rot)), nil
	case collision.KindQuad:
		return collision.QuadShape(geometry.Quad{
			Center:     center,
			Extensions: math.Vec2{X: sc.Extensions[0], Y: sc.Extensions[1]},
			Rotation:   rot,
			Reverse:    sc.Reverse,
		}), nil
	case collision.KindPlane:
		if vec3(sc.Normal).IsZero() {
			return collision.Shape{}, fmt.Errorf("plane needs a normal")
		}
		return collision.PlaneShape(geometry.NewPlane(vec3(sc.Normal), sc.Distance)), nil
	}
	return collision.Shape{}, fmt.Errorf("shape kind %s cannot be placed in a level", kind)
}

func radians(deg config.Vec3) math.Vec3 {
	return math.Vec3{X: math.Radians(deg[0]), Y: math.Radians(deg[1]), Z: math.Radians(deg[2])}
}
