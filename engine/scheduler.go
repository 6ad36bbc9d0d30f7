package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gameshell/events"
	"github.com/lixenwraith/gameshell/status"
)

// emaNewWeight is the smoothing factor for tick/render cost averages:
// 0.7 of the fresh sample, 0.3 of the running value
const emaNewWeight = 0.7

// Scheduler decouples a fixed-rate simulation tick from a variable-rate frame
// callback. Each Frame invocation runs the catch-up loop (zero or more ticks,
// bounded by the frame-skip budget), then emits exactly one render
// notification carrying the interpolation fraction.
//
// lastTickDeadline marks the start of the current tick period; the next tick
// is due one period after it. Exceeding the skip budget drops the remaining
// backlog instead of replaying it, trading determinism for liveness.
type Scheduler struct {
	clock TimeProvider
	sink  events.Sink

	period    time.Duration
	frameSkip time.Duration

	mu               sync.Mutex
	lastTickDeadline time.Time
	paused           bool
	pausedFraction   float64

	// tickHook runs after each tick emit, still inside the catch-up loop
	// The shell points it at the input buffer shift
	tickHook func()

	tickCount  atomic.Uint64
	frameCount atomic.Uint64
	dropCount  atomic.Uint64

	// Cached metric pointers
	statTicks  *atomic.Int64
	statFrames *atomic.Int64
	statDrops  *atomic.Int64
	tickMS     *status.AtomicFloat
	renderMS   *status.AtomicFloat
}

// NewScheduler creates a scheduler over the given clock and notification sink
// period is the fixed simulation step; a non-positive period is a
// construction error. frameSkip bounds catch-up per frame; non-positive
// selects the default (period + 5ms) × 5.
func NewScheduler(clock TimeProvider, sink events.Sink, period, frameSkip time.Duration, reg *status.Registry) (*Scheduler, error) {
	if period <= 0 {
		return nil, fmt.Errorf("scheduler: tick period %v is not positive", period)
	}
	if frameSkip <= 0 {
		frameSkip = (period + 5*time.Millisecond) * 5
	}

	s := &Scheduler{
		clock:            clock,
		sink:             sink,
		period:           period,
		frameSkip:        frameSkip,
		lastTickDeadline: clock.Now(),
		statTicks:        reg.Ints.Get("engine.ticks"),
		statFrames:       reg.Ints.Get("engine.frames"),
		statDrops:        reg.Ints.Get("engine.drops"),
		tickMS:           reg.Floats.Get("engine.tick_ms"),
		renderMS:         reg.Floats.Get("engine.render_ms"),
	}
	return s, nil
}

// SetTickHook installs the per-tick callback, invoked after each tick emit
// Must be set before the first Frame
func (s *Scheduler) SetTickHook(fn func()) {
	s.tickHook = fn
}

// Period returns the fixed simulation step
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// FrameSkip returns the catch-up budget per frame invocation
func (s *Scheduler) FrameSkip() time.Duration {
	return s.frameSkip
}

// Frame executes one frame-pacing invocation: all due ticks, then a single
// render notification. Returns the interpolation fraction it rendered with.
func (s *Scheduler) Frame() float64 {
	s.runCatchUp()

	frac := s.Fraction()

	start := s.clock.Now()
	s.sink.Emit(events.ChannelRender, frac)
	cost := s.clock.Now().Sub(start)
	s.renderMS.Blend(float64(cost)/float64(time.Millisecond), emaNewWeight)

	frames := s.frameCount.Add(1)
	s.statFrames.Store(int64(frames))
	return frac
}

// runCatchUp brings simulation time up to the wall clock, one fixed period
// per tick, bounded by the skip budget. The schedule mutex is released
// around each tick emit so handlers may query or pause the scheduler.
func (s *Scheduler) runCatchUp() {
	skipDeadline := s.clock.Now().Add(s.frameSkip)

	for {
		s.mu.Lock()
		if s.paused {
			s.mu.Unlock()
			return
		}

		now := s.clock.Now()
		if now.Before(s.lastTickDeadline.Add(s.period)) {
			s.mu.Unlock()
			return
		}

		if now.After(skipDeadline) {
			// Budget exhausted: abandon the backlog rather than replay it
			s.lastTickDeadline = now.Add(s.period)
			s.mu.Unlock()
			drops := s.dropCount.Add(1)
			s.statDrops.Store(int64(drops))
			return
		}

		s.lastTickDeadline = s.lastTickDeadline.Add(s.period)
		s.mu.Unlock()

		ticks := s.tickCount.Add(1)
		s.statTicks.Store(int64(ticks))

		start := s.clock.Now()
		s.sink.Emit(events.ChannelTick, nil)
		cost := s.clock.Now().Sub(start)
		s.tickMS.Blend(float64(cost)/float64(time.Millisecond), emaNewWeight)

		if s.tickHook != nil {
			s.tickHook()
		}
	}
}

// Fraction returns the interpolation fraction: progress through the current
// tick period, clamped to 0..1. While paused it returns the fraction captured
// at pause time, so renders hold position instead of drifting.
func (s *Scheduler) Fraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return s.pausedFraction
	}
	return s.fractionLocked(s.clock.Now())
}

// fractionLocked computes the clamped fraction at the given instant
// Immediately after a backlog drop the deadline sits ahead of the wall clock
// and the raw ratio is negative; the render contract is 0..1.
func (s *Scheduler) fractionLocked(now time.Time) float64 {
	frac := float64(now.Sub(s.lastTickDeadline)) / float64(s.period)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// Pause freezes the tick schedule, capturing the fractional progress into the
// current period. No ticks run and no tick notifications fire while paused.
// No-op if already paused.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return
	}
	s.pausedFraction = s.fractionLocked(s.clock.Now())
	s.paused = true
}

// Resume restarts the tick schedule, rewinding the deadline so the captured
// fractional progress is preserved: elapsed real time is neither skipped nor
// replayed. No-op if not paused.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		return
	}
	s.paused = false
	back := time.Duration(s.pausedFraction * float64(s.period))
	s.lastTickDeadline = s.clock.Now().Add(-back)
}

// Paused returns the pause state
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// TickCount returns the number of ticks executed
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// FrameCount returns the number of frame invocations completed
func (s *Scheduler) FrameCount() uint64 {
	return s.frameCount.Load()
}

// DropCount returns the number of frame invocations that abandoned backlog
func (s *Scheduler) DropCount() uint64 {
	return s.dropCount.Load()
}
