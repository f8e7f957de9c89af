package input

// JumpLatch detects released-to-pressed transitions of a polled button.
type JumpLatch struct {
	down bool
}

// Press records the button state for this poll and reports whether it
// was just pressed. Holding the button reports true once.
func (l *JumpLatch) Press(held bool) bool {
	pressed := held && !l.down
	l.down = held
	return pressed
}

// Reset forgets the previous state, as if the button were released.
func (l *JumpLatch) Reset() {
	l.down = false
}
