// Package terminal adapts a tcell screen into the shell's raw input source.
// It owns the platform-specific parts the core stays free of: escape-sequence
// key translation, mouse button masks, focus reporting, and the key-release
// synthesis terminals require (they report presses only; a release is
// inferred when autorepeat stops refreshing the key).
package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameshell/shell"
)

// DefaultKeySustain is the stock release-synthesis window
// Longer than typical autorepeat initial delay, so a held key does not
// flicker released between the first press and the first repeat.
const DefaultKeySustain = 500 * time.Millisecond

// ScreenSource feeds tcell events into a shell's raw input surface
// One goroutine polls the screen; key, mouse and focus events are translated
// and forwarded synchronously.
type ScreenSource struct {
	screen  tcell.Screen
	sustain time.Duration

	mu      sync.Mutex
	raw     shell.RawInput
	timers  map[int]*time.Timer
	buttons int
	lastX   int
	lastY   int

	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScreenSource creates a source over an initialized screen
// Non-positive sustain selects DefaultKeySustain.
func NewScreenSource(screen tcell.Screen, sustain time.Duration) *ScreenSource {
	if sustain <= 0 {
		sustain = DefaultKeySustain
	}
	return &ScreenSource{
		screen:   screen,
		sustain:  sustain,
		timers:   make(map[int]*time.Timer),
		stopChan: make(chan struct{}),
	}
}

// Attach starts forwarding screen events to raw
// Fails if the source is already attached.
func (s *ScreenSource) Attach(raw shell.RawInput) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("terminal: source already attached")
	}

	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()

	s.screen.EnableMouse()
	s.screen.EnableFocus()

	s.wg.Add(1)
	go s.pollLoop(raw)
	return nil
}

// Detach stops event forwarding and cancels pending release timers
// Idempotent; nothing is delivered after it returns.
func (s *ScreenSource) Detach() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	close(s.stopChan)
	// Unblock PollEvent
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	s.wg.Wait()

	s.mu.Lock()
	for code, timer := range s.timers {
		timer.Stop()
		delete(s.timers, code)
	}
	s.raw = nil
	s.mu.Unlock()
}

func (s *ScreenSource) pollLoop(raw shell.RawInput) {
	defer s.wg.Done()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-s.stopChan:
			return
		default:
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(raw, e)
		case *tcell.EventMouse:
			s.handleMouse(raw, e)
		case *tcell.EventFocus:
			s.handleFocus(raw, e)
		}
	}
}

// handleKey forwards the press and (re)arms the synthetic release
// Autorepeat refreshes the sustain window, so the release fires once the
// terminal stops repeating the key.
func (s *ScreenSource) handleKey(raw shell.RawInput, ev *tcell.EventKey) {
	code := TranslateKey(ev)
	if code < 0 {
		return
	}

	raw.KeyDown(code)

	s.mu.Lock()
	if timer, ok := s.timers[code]; ok {
		timer.Reset(s.sustain)
	} else {
		s.timers[code] = time.AfterFunc(s.sustain, func() {
			s.expireKey(code)
		})
	}
	s.mu.Unlock()
}

func (s *ScreenSource) expireKey(code int) {
	s.mu.Lock()
	delete(s.timers, code)
	raw := s.raw
	s.mu.Unlock()

	if raw != nil {
		raw.KeyUp(code)
	}
}

// handleMouse emits press/release edges for changed buttons, then a move
// carrying the full mask
func (s *ScreenSource) handleMouse(raw shell.RawInput, ev *tcell.EventMouse) {
	x, y := ev.Position()
	mask := TranslateButtons(ev.Buttons())

	s.mu.Lock()
	prev := s.buttons
	s.buttons = mask
	s.lastX, s.lastY = x, y
	s.mu.Unlock()

	for b := 1; b <= len(buttonBits); b++ {
		bit := 1 << (b - 1)
		switch {
		case mask&bit != 0 && prev&bit == 0:
			raw.PointerDown(x, y, b)
		case mask&bit == 0 && prev&bit != 0:
			raw.PointerUp(x, y, b)
		}
	}
	raw.PointerMove(x, y, mask)
}

// handleFocus maps focus-in to a pointer entry at the last known position
// and focus-out to focus loss (which releases every held key)
func (s *ScreenSource) handleFocus(raw shell.RawInput, ev *tcell.EventFocus) {
	if ev.Focused {
		s.mu.Lock()
		x, y := s.lastX, s.lastY
		s.mu.Unlock()
		raw.PointerEnter(x, y)
		return
	}

	// Held keys were cleared; their release timers have nothing left to do
	s.mu.Lock()
	for code, timer := range s.timers {
		timer.Stop()
		delete(s.timers, code)
	}
	s.mu.Unlock()
	raw.FocusLost()
}
