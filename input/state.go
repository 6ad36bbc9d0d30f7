package input

import "sync"

// State holds the double-buffered key vectors and pointer coordinates for one
// shell. The current buffer is mutated by raw input at arbitrary times; the
// previous buffer is overwritten by a copy of current exactly once per
// simulation tick. Edge queries (pressed/released) compare the two.
//
// Raw input and the frame driver run on different goroutines, so access is
// serialized with a mutex; critical sections are a few loads or a copy.
type State struct {
	mu       sync.Mutex
	current  []bool
	previous []bool

	x, y         int
	prevX, prevY int
}

// NewState creates a State sized to a canonical key space
func NewState(size int) *State {
	return &State{
		current:  make([]bool, size),
		previous: make([]bool, size),
	}
}

// SetKey sets the current-buffer value for a canonical index
// Out-of-range indices (including NotFound) are ignored
func (s *State) SetKey(index int, down bool) {
	if index < 0 || index >= len(s.current) {
		return
	}
	s.mu.Lock()
	s.current[index] = down
	s.mu.Unlock()
}

// Key returns the current-buffer value for a canonical index
func (s *State) Key(index int) bool {
	if index < 0 || index >= len(s.current) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[index]
}

// PrevKey returns the previous-buffer value for a canonical index
func (s *State) PrevKey(index int) bool {
	if index < 0 || index >= len(s.previous) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previous[index]
}

// ShiftBuffers copies current into previous
// Called once per simulation tick, never per render
func (s *State) ShiftBuffers() {
	s.mu.Lock()
	copy(s.previous, s.current)
	s.mu.Unlock()
}

// ClearAll forces every current-buffer entry to false, leaving previous
// untouched so held keys produce a release edge on the next tick
// Used on focus loss
func (s *State) ClearAll() {
	s.mu.Lock()
	for i := range s.current {
		s.current[i] = false
	}
	s.mu.Unlock()
}

// SetPointer updates the current pointer position
func (s *State) SetPointer(x, y int) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.mu.Unlock()
}

// SeedPointer sets both current and previous pointer positions
// Used on pointer entry so the first delta after entry is zero
func (s *State) SeedPointer(x, y int) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.prevX, s.prevY = x, y
	s.mu.Unlock()
}

// CommitPointer copies the current pointer position into previous
// Called once per simulation tick, mirroring ShiftBuffers
func (s *State) CommitPointer() {
	s.mu.Lock()
	s.prevX, s.prevY = s.x, s.y
	s.mu.Unlock()
}

// Pointer returns the current pointer position
func (s *State) Pointer() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y
}

// PrevPointer returns the pointer position as of the last tick
func (s *State) PrevPointer() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prevX, s.prevY
}
