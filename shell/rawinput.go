package shell

import "github.com/lixenwraith/gameshell/input"

// RawInput is the surface platform sources drive. Calls mutate the current
// input buffer immediately and synchronously; they never block and never
// trigger a tick or render. Calls after Stop are dropped.
type RawInput interface {
	KeyDown(code int)
	KeyUp(code int)
	PointerMove(x, y, buttons int)
	PointerDown(x, y, button int)
	PointerUp(x, y, button int)
	PointerEnter(x, y int)
	PointerLeave()
	FocusLost()
}

// KeyDown marks the canonical key for a raw code as held
// Codes without a canonical mapping are ignored.
func (s *Shell) KeyDown(code int) {
	s.setRawKey(code, true)
}

// KeyUp marks the canonical key for a raw code as released
func (s *Shell) KeyUp(code int) {
	s.setRawKey(code, false)
}

func (s *Shell) setRawKey(code int, down bool) {
	if s.disposed.Load() {
		return
	}
	idx := s.keys.CodeIndex(code)
	if idx == input.NotFound || idx == s.keys.UnknownIndex() {
		return
	}
	s.state.SetKey(idx, down)
}

// PointerMove updates the pointer position and reconciles all button states
// against the reported mask (bit b-1 set = button b held). Reconciling on
// every move recovers press/release edges missed while the pointer was
// outside the attachment target.
func (s *Shell) PointerMove(x, y, buttons int) {
	if s.disposed.Load() {
		return
	}
	s.state.SetPointer(x, y)
	for b := 1; b <= input.MouseButtons; b++ {
		s.state.SetKey(s.keys.MouseIndex(b), buttons&(1<<(b-1)) != 0)
	}
}

// PointerDown marks pointer button b (1-based) as held at the given position
func (s *Shell) PointerDown(x, y, button int) {
	if s.disposed.Load() {
		return
	}
	s.state.SetPointer(x, y)
	s.state.SetKey(s.keys.MouseIndex(button), true)
}

// PointerUp marks pointer button b (1-based) as released at the given position
func (s *Shell) PointerUp(x, y, button int) {
	if s.disposed.Load() {
		return
	}
	s.state.SetPointer(x, y)
	s.state.SetKey(s.keys.MouseIndex(button), false)
}

// PointerEnter seeds current and previous pointer positions, so the first
// movement after entry interpolates from the entry point instead of jumping
func (s *Shell) PointerEnter(x, y int) {
	if s.disposed.Load() {
		return
	}
	s.state.SeedPointer(x, y)
}

// PointerLeave releases all pointer buttons in the current buffer; releases
// surface as edges on the next tick
func (s *Shell) PointerLeave() {
	if s.disposed.Load() {
		return
	}
	for b := 1; b <= input.MouseButtons; b++ {
		s.state.SetKey(s.keys.MouseIndex(b), false)
	}
}

// FocusLost forces every current-buffer key to false, previous untouched, so
// every held key produces a release edge on the next tick
func (s *Shell) FocusLost() {
	if s.disposed.Load() {
		return
	}
	s.state.ClearAll()
}
