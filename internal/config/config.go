// Package config handles simulation configuration loading and management.
package config

import "time"

// Config holds all simulation settings.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Time       TimeConfig       `yaml:"time"`
	Level      LevelConfig      `yaml:"level"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

// PhysicsConfig holds rigid body settings.
type PhysicsConfig struct {
	Gravity       float32 `yaml:"gravity"`
	Mass          float32 `yaml:"mass"`
	Friction      float32 `yaml:"friction"`
	AirResistance float32 `yaml:"air_resistance"`
	UseGravity    bool    `yaml:"use_gravity"`
}

// PlayerConfig holds the controlled character's settings.
type PlayerConfig struct {
	Name             string  `yaml:"name"`
	MaxHealth        int     `yaml:"max_health"`
	Speed            float32 `yaml:"speed"`
	InitialJumpForce float32 `yaml:"initial_jump_force"`
	Radius           float32 `yaml:"radius"`
}

// TimeConfig holds frame clock settings.
type TimeConfig struct {
	TargetFrameRate int     `yaml:"target_frame_rate"`
	TimeScale       float32 `yaml:"time_scale"`
	MaxSubSteps     int     `yaml:"max_sub_steps"` // 0 = unlimited
}

// LevelConfig describes the actors of a level.
type LevelConfig struct {
	Name       string        `yaml:"name"`
	Spawn      Vec3          `yaml:"spawn"`
	KillPlaneY float32       `yaml:"kill_plane_y"`
	Actors     []ActorConfig `yaml:"actors"`
}

// ActorConfig describes one enemy or platform.
type ActorConfig struct {
	Name   string      `yaml:"name"`
	Tag    string      `yaml:"tag"`
	Shape  ShapeConfig `yaml:"shape"`
	Damage int         `yaml:"damage,omitempty"`
}

// ShapeConfig describes a collider. Which fields apply depends on Kind.
type ShapeConfig struct {
	Kind       string  `yaml:"kind"`
	Center     Vec3    `yaml:"center"`
	Extensions Vec3    `yaml:"extensions,omitempty"` // box and rounded box edge lengths; quads use x, y
	Rotation   Vec3    `yaml:"rotation,omitempty"`   // Euler angles, degrees
	Radius     float32 `yaml:"radius,omitempty"`     // sphere, capsule, cylinder, rounded box corner
	Height     float32 `yaml:"height,omitempty"`     // capsule, cylinder
	Normal     Vec3    `yaml:"normal,omitempty"`     // plane
	Distance   float32 `yaml:"distance,omitempty"`   // plane
	Reverse    bool    `yaml:"reverse,omitempty"`    // quad faces -normal
}

// SimulationConfig holds the headless runner settings.
type SimulationConfig struct {
	Frames    int           `yaml:"frames"`
	FrameTime time.Duration `yaml:"frame_time"`
	Runs      int           `yaml:"runs"` // parallel replays compared for determinism
	Script    []ScriptStep  `yaml:"script"`
}

// ScriptStep holds keys down for a number of frames.
type ScriptStep struct {
	Frames int      `yaml:"frames"`
	Keys   []string `yaml:"keys"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:       -9.81,
			Mass:          1,
			Friction:      7.5,
			AirResistance: 1.55,
			UseGravity:    true,
		},
		Player: PlayerConfig{
			Name:             "player",
			MaxHealth:        100,
			Speed:            3,
			InitialJumpForce: 80,
			Radius:           0.5,
		},
		Time: TimeConfig{
			TargetFrameRate: 60,
			TimeScale:       1,
			MaxSubSteps:     0,
		},
		Level: LevelConfig{
			Name:       "default",
			Spawn:      Vec3{0, 2, 0},
			KillPlaneY: -20,
			Actors: []ActorConfig{
				{
					Name: "ground",
					Tag:  "platform",
					Shape: ShapeConfig{
						Kind:       "box",
						Center:     Vec3{0, -1, 0},
						Extensions: Vec3{20, 2, 20},
					},
				},
			},
		},
		Simulation: SimulationConfig{
			Frames:    600,
			FrameTime: time.Second / 60,
			Runs:      1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
