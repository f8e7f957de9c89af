// Package entity implements the actors of a level: the player, enemies and
// platforms.
package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Faultbox/platformer/internal/physics"
	"github.com/Faultbox/platformer/pkg/collision"
	"github.com/Faultbox/platformer/pkg/geometry"
	"github.com/Faultbox/platformer/pkg/math"
)

// Tag classifies an actor.
type Tag uint8

const (
	TagUnassigned Tag = iota
	TagPlayer
	TagEnemy
	TagPlatform
)

func (t Tag) String() string {
	switch t {
	case TagUnassigned:
		return "unassigned"
	case TagPlayer:
		return "player"
	case TagEnemy:
		return "enemy"
	case TagPlatform:
		return "platform"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// ParseTag parses a tag name as written by Tag.String. Matching ignores case.
func ParseTag(s string) (Tag, error) {
	switch strings.ToLower(s) {
	case "unassigned", "":
		return TagUnassigned, nil
	case "player":
		return TagPlayer, nil
	case "enemy":
		return TagEnemy, nil
	case "platform":
		return TagPlatform, nil
	}
	return TagUnassigned, fmt.Errorf("unknown tag %q", s)
}

// Collider is the collision shape an actor owns. The zero Collider means
// the actor has none.
type Collider struct {
	collision.Shape
}

// IsZero reports whether there is no collider.
func (c Collider) IsZero() bool {
	return c.Kind == collision.KindNone
}

// Actor is anything placed in a level.
type Actor struct {
	ID        uuid.UUID
	Name      string
	Tag       Tag
	Transform physics.Transform
	Collider  Collider

	// Role attributes, set according to Tag
	Player *PlayerAttrs
	Enemy  *EnemyAttrs
}

// NewActor creates an actor with no role attributes.
func NewActor(name string, tag Tag, shape collision.Shape) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      name,
		Tag:       tag,
		Transform: physics.NewTransform(shape.Center()),
		Collider:  Collider{Shape: shape},
	}
}

// NewPlayer creates a player with a sphere collider centered on position.
func NewPlayer(name string, position math.Vec3, radius float32, attrs PlayerAttrs) *Actor {
	a := NewActor(name, TagPlayer, collision.SphereShape(geometry.Sphere{Center: position, Radius: radius}))
	a.Player = &attrs
	return a
}

// NewEnemy creates an enemy dealing damage on contact.
func NewEnemy(name string, shape collision.Shape, damage int) *Actor {
	a := NewActor(name, TagEnemy, shape)
	a.Enemy = &EnemyAttrs{Damage: damage}
	return a
}

// NewPlatform creates a static platform.
func NewPlatform(name string, shape collision.Shape) *Actor {
	return NewActor(name, TagPlatform, shape)
}

// Position returns the transform position.
func (a *Actor) Position() math.Vec3 {
	return a.Transform.Position
}

// SetPosition moves the actor and its collider.
func (a *Actor) SetPosition(p math.Vec3) {
	a.Transform.Position = p
	a.SyncCollider()
}

// SyncCollider writes the transform position into the collider center.
// It returns false when the collider cannot follow the transform: no
// collider, or an infinite plane.
func (a *Actor) SyncCollider() bool {
	switch a.Collider.Kind {
	case collision.KindNone, collision.KindPlane:
		return false
	}
	a.Collider.Shape = a.Collider.MoveTo(a.Transform.Position)
	return true
}

// Radius returns the radius used to sweep the actor against obstacles.
// Box colliders report their smallest half extent.
func (a *Actor) Radius() float32 {
	switch a.Collider.Kind {
	case collision.KindSphere:
		return a.Collider.Sphere.Radius
	case collision.KindCapsule:
		return a.Collider.Capsule.Radius
	case collision.KindCylinder:
		return a.Collider.Cylinder.Radius
	case collision.KindBox:
		h := a.Collider.Box.HalfExtensions()
		return math.Min(h.X, math.Min(h.Y, h.Z))
	}
	return 0
}

// BoundingSphere returns the player's collision sphere, at the transform
// position with Radius.
func (a *Actor) BoundingSphere() geometry.Sphere {
	return geometry.Sphere{Center: a.Transform.Position, Radius: a.Radius()}
}
