package world

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/platformer/internal/config"
	"github.com/Faultbox/platformer/internal/game/entity"
	"github.com/Faultbox/platformer/internal/game/input"
	"github.com/Faultbox/platformer/pkg/math"
)

// Script is a parsed key script. Step i holds its keys for Frames frames;
// after the last step every key is released.
type Script struct {
	steps []scriptStep
}

type scriptStep struct {
	frames int
	keys   []input.Key
}

// NewScript parses the key names of steps.
func NewScript(steps []config.ScriptStep) (*Script, error) {
	s := &Script{steps: make([]scriptStep, 0, len(steps))}
	for i, st := range steps {
		keys := make([]input.Key, 0, len(st.Keys))
		for _, name := range st.Keys {
			k, err := input.ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("script step %d: %w", i, err)
			}
			keys = append(keys, k)
		}
		s.steps = append(s.steps, scriptStep{frames: st.Frames, keys: keys})
	}
	return s, nil
}

// Keys returns the keys held on frame.
func (s *Script) Keys(frame int) []input.Key {
	for _, st := range s.steps {
		if frame < st.frames {
			return st.keys
		}
		frame -= st.frames
	}
	return nil
}

// Len returns the total number of scripted frames.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.frames
	}
	return n
}

// Result summarizes a finished run.
type Result struct {
	Digest   uint64
	Frames   uint64
	Respawns int
	Position math.Vec3
	State    entity.MoveState
	Health   int
}

// Run builds the level of cfg and plays cfg.Simulation.Frames frames of
// its script, stopping early when ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (Result, error) {
	w, err := FromLevel(cfg, log)
	if err != nil {
		return Result{}, err
	}
	script, err := NewScript(cfg.Simulation.Script)
	if err != nil {
		return Result{}, err
	}

	in := input.New()
	for f := 0; f < cfg.Simulation.Frames; f++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		in.SetHeld(script.Keys(f)...)
		if err := w.Step(in.Snapshot(), cfg.Simulation.FrameTime); err != nil {
			return Result{}, err
		}
	}

	player := w.Player()
	return Result{
		Digest:   w.Digest(),
		Frames:   w.Frame(),
		Respawns: w.Respawns(),
		Position: player.Position(),
		State:    w.Controller().State(),
		Health:   player.Player.Health,
	}, nil
}
