package entity

// MoveState is the player's locomotion state.
type MoveState uint8

const (
	Grounded MoveState = iota
	Jumping
)

func (s MoveState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	}
	return "invalid"
}

// Player defaults.
const (
	DefaultSpeed            float32 = 3
	DefaultInitialJumpForce float32 = 80
)

// PlayerAttrs holds the player-only state.
type PlayerAttrs struct {
	MaxHealth        int
	Health           int
	Speed            float32 // horizontal speed limit, units/s
	InitialJumpForce float32
	JumpForce        float32 // remaining upward force of the current jump
	State            MoveState
}

// NewPlayerAttrs creates grounded attributes at full health.
func NewPlayerAttrs(maxHealth int, speed, initialJumpForce float32) PlayerAttrs {
	return PlayerAttrs{
		MaxHealth:        maxHealth,
		Health:           maxHealth,
		Speed:            speed,
		InitialJumpForce: initialJumpForce,
		State:            Grounded,
	}
}

// Heal restores h health, capped at MaxHealth.
func (p *PlayerAttrs) Heal(h int) {
	p.setHealth(p.Health + h)
}

// TakeDamage removes d health, floored at zero.
func (p *PlayerAttrs) TakeDamage(d int) {
	p.setHealth(p.Health - d)
}

func (p *PlayerAttrs) setHealth(h int) {
	switch {
	case h > p.MaxHealth:
		h = p.MaxHealth
	case h < 0:
		h = 0
	}
	p.Health = h
}

// IsAlive returns whether health is above zero.
func (p *PlayerAttrs) IsAlive() bool {
	return p.Health > 0
}

// EnemyAttrs holds the enemy-only state.
type EnemyAttrs struct {
	Damage int // health removed from the player on contact
}
