package game

// Direction identifies a held movement key
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount
)

// InputState is the set of directions currently held. It sits on the
// boundary with the input layer: press/release events mutate it, the
// update step reads it once per frame. Membership is idempotent, so
// repeated press events before a release are equivalent to one.
type InputState struct {
	held [directionCount]bool
}

// NewInputState creates an empty input state
func NewInputState() *InputState {
	return &InputState{}
}

// Press marks a direction as held
func (s *InputState) Press(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = true
	}
}

// Release clears a held direction
func (s *InputState) Release(d Direction) {
	if d >= 0 && d < directionCount {
		s.held[d] = false
	}
}

// Held reports whether a direction is currently held
func (s *InputState) Held(d Direction) bool {
	return d >= 0 && d < directionCount && s.held[d]
}

// Reset clears all held directions
func (s *InputState) Reset() {
	s.held = [directionCount]bool{}
}
