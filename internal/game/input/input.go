// Package input turns key events into per-frame movement snapshots.
package input

import (
	"fmt"
	"strings"
)

// Key is a logical movement key.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyJump
	keyCount
)

var keyNames = [keyCount]string{"forward", "backward", "left", "right", "jump"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey parses a key name as written by Key.String.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if strings.EqualFold(name, s) {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// EventType distinguishes key presses from releases.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
)

// Event is a key transition reported by the platform layer.
type Event struct {
	Type EventType
	Key  Key
}

// Snapshot is the movement input of one frame. Jump is true only on the
// frame the jump key goes down.
type Snapshot struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// Input tracks held keys across frames.
type Input struct {
	held  [keyCount]bool
	latch JumpLatch
}

// New creates an input tracker with every key released.
func New() *Input {
	return &Input{}
}

// Apply folds events into the held-key state.
func (i *Input) Apply(events ...Event) {
	for _, e := range events {
		if e.Key >= keyCount {
			continue
		}
		i.held[e.Key] = e.Type == EventKeyDown
	}
}

// SetHeld replaces the held-key state, for callers that poll key state
// instead of receiving events.
func (i *Input) SetHeld(keys ...Key) {
	i.held = [keyCount]bool{}
	for _, k := range keys {
		if k < keyCount {
			i.held[k] = true
		}
	}
}

// IsHeld reports whether k is down.
func (i *Input) IsHeld(k Key) bool {
	return k < keyCount && i.held[k]
}

// Snapshot samples the current frame. Call it exactly once per frame so the
// jump edge is seen once.
func (i *Input) Snapshot() Snapshot {
	return Snapshot{
		Forward:  i.held[KeyForward],
		Backward: i.held[KeyBackward],
		Left:     i.held[KeyLeft],
		Right:    i.held[KeyRight],
		Jump:     i.latch.Press(i.held[KeyJump]),
	}
}

// Reset releases every key.
func (i *Input) Reset() {
	i.held = [keyCount]bool{}
	i.latch.Reset()
}
