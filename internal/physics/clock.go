package physics

import "time"

// FrameClock converts wall-clock frame time into fixed physics sub-steps.
// The remainder of each frame is dropped, not carried to the next one.
type FrameClock struct {
	// TimeScale multiplies every reported delta. 1 is real time.
	TimeScale float32
	// MaxSubSteps caps SubSteps. Zero means no cap.
	MaxSubSteps int

	fixed time.Duration
	delta time.Duration
	steps int
}

// NewFrameClock creates a clock stepping rate times per second.
func NewFrameClock(rate int) *FrameClock {
	if rate <= 0 {
		rate = 60
	}
	return &FrameClock{
		TimeScale: 1,
		fixed:     max(time.Second/time.Duration(rate), time.Nanosecond),
		steps:     1,
	}
}

// Advance records the time elapsed since the previous frame and counts the
// whole fixed slices it strictly exceeds.
func (c *FrameClock) Advance(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	c.delta = elapsed

	n := 0
	if elapsed > 0 {
		n = int((elapsed - 1) / c.fixed)
	}
	if c.MaxSubSteps > 0 && n > c.MaxSubSteps {
		n = c.MaxSubSteps
	}
	c.steps = n
}

// Delta returns the scaled frame time in seconds.
func (c *FrameClock) Delta() float32 {
	return float32(c.delta.Seconds()) * c.TimeScale
}

// FixedDeltaTime returns the scaled sub-step duration in seconds.
func (c *FrameClock) FixedDeltaTime() float32 {
	return float32(c.fixed.Seconds()) * c.TimeScale
}

// FixedStep returns the unscaled sub-step duration.
func (c *FrameClock) FixedStep() time.Duration {
	return c.fixed
}

// SubSteps returns how many fixed steps to run this frame, at least one.
func (c *FrameClock) SubSteps() int {
	if c.steps == 0 {
		return 1
	}
	return c.steps
}
