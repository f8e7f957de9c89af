package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// maxFrameRate keeps the physics step at one nanosecond or more.
const maxFrameRate = int(time.Second)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Physics.Mass <= 0 {
		err = multierr.Append(err, fmt.Errorf("physics.mass must be positive, got %v", c.Physics.Mass))
	}
	if c.Physics.Friction < 0 {
		err = multierr.Append(err, fmt.Errorf("physics.friction must not be negative, got %v", c.Physics.Friction))
	}
	if c.Physics.AirResistance < 0 {
		err = multierr.Append(err, fmt.Errorf("physics.air_resistance must not be negative, got %v", c.Physics.AirResistance))
	}

	if c.Player.MaxHealth <= 0 {
		err = multierr.Append(err, fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth))
	}
	if c.Player.Speed <= 0 {
		err = multierr.Append(err, fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed))
	}
	if c.Player.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius))
	}

	if c.Time.TargetFrameRate <= 0 || c.Time.TargetFrameRate > maxFrameRate {
		err = multierr.Append(err, fmt.Errorf("time.target_frame_rate must be in (0, %d], got %d", maxFrameRate, c.Time.TargetFrameRate))
	}
	if c.Time.TimeScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("time.time_scale must be positive, got %v", c.Time.TimeScale))
	}
	if c.Time.MaxSubSteps < 0 {
		err = multierr.Append(err, fmt.Errorf("time.max_sub_steps must not be negative, got %d", c.Time.MaxSubSteps))
	}

	for i, a := range c.Level.Actors {
		if a.Shape.Kind == "" {
			err = multierr.Append(err, fmt.Errorf("level.actors[%d] (%s): shape.kind is required", i, a.Name))
		}
	}

	for i, s := range c.Simulation.Script {
		if s.Frames < 0 {
			err = multierr.Append(err, fmt.Errorf("simulation.script[%d].frames must not be negative, got %d", i, s.Frames))
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}
