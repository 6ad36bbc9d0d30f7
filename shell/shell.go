// Package shell composes the scheduler and the input layer into the surface
// an application talks to: virtual-key queries, alias binding, pause/resume,
// and lifecycle. Notifications flow out through an events.Sink; raw input
// flows in through the RawInput surface, driven by a platform Source.
package shell

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gameshell/engine"
	"github.com/lixenwraith/gameshell/events"
	"github.com/lixenwraith/gameshell/input"
	"github.com/lixenwraith/gameshell/status"
)

// Source is the platform collaborator that produces raw input. Attach is
// called on Start with the shell's raw-input surface; Detach on Stop, after
// which the source must deliver nothing.
type Source interface {
	Attach(RawInput) error
	Detach()
}

// Config carries shell construction options
// Zero-value fields select defaults; only TickRate is mandatory.
type Config struct {
	// TickRate is the fixed simulation period. Non-positive is a
	// construction error.
	TickRate time.Duration

	// FrameSkip bounds catch-up per frame invocation
	// Zero selects (TickRate + 5ms) × 5.
	FrameSkip time.Duration

	// FrameRate is the stock driver's cadence; ignored when Driver is set
	// Zero selects ~60 Hz.
	FrameRate time.Duration

	// Bindings seeds the binding table: virtual name → physical names
	Bindings map[string][]string

	// Source is the raw input attachment target; nil runs without input
	Source Source

	// Keys is the canonical key registry; nil selects input.Default()
	Keys *input.KeySpace

	// Sink receives notifications; nil selects a stock events.Dispatcher
	Sink events.Sink

	// Clock is the scheduler time source; nil selects the system clock
	Clock engine.TimeProvider

	// Driver paces frames; nil selects a TimerDriver at FrameRate
	Driver engine.FrameDriver

	// Logger receives lifecycle logs; nil discards
	Logger *slog.Logger
}

// Shell owns one input state, one binding table and one scheduler
// Instances share nothing but the (immutable) key space.
type Shell struct {
	keys     *input.KeySpace
	state    *input.State
	bindings *input.Bindings
	sched    *engine.Scheduler
	driver   engine.FrameDriver
	sink     events.Sink
	source   Source
	metrics  *status.Registry
	logger   *slog.Logger

	started  atomic.Bool
	disposed atomic.Bool
	stopOnce sync.Once
}

// New creates a shell from cfg
func New(cfg Config) (*Shell, error) {
	keys := cfg.Keys
	if keys == nil {
		keys = input.Default()
	}
	sink := cfg.Sink
	if sink == nil {
		sink = events.NewDispatcher()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = engine.NewSystemClock()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	metrics := status.NewRegistry()
	sched, err := engine.NewScheduler(clock, sink, cfg.TickRate, cfg.FrameSkip, metrics)
	if err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	driver := cfg.Driver
	if driver == nil {
		driver = engine.NewTimerDriver(cfg.FrameRate)
	}

	s := &Shell{
		keys:     keys,
		state:    input.NewState(keys.Len()),
		bindings: input.NewBindings(keys),
		sched:    sched,
		driver:   driver,
		sink:     sink,
		source:   cfg.Source,
		metrics:  metrics,
		logger:   logger,
	}

	for virtual, physical := range cfg.Bindings {
		s.bindings.Bind(virtual, physical...)
	}

	sched.SetTickHook(func() {
		s.state.ShiftBuffers()
		s.state.CommitPointer()
	})

	return s, nil
}

// Start attaches the source, emits the init notification once, and starts
// the frame driver. Second and later calls are no-ops.
func (s *Shell) Start() error {
	if s.disposed.Load() {
		return fmt.Errorf("shell: start after stop")
	}
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.source != nil {
		if err := s.source.Attach(s); err != nil {
			s.started.Store(false)
			return fmt.Errorf("shell: attach source: %w", err)
		}
	}

	s.sink.Emit(events.ChannelInit, nil)
	s.logger.Info("shell started",
		"tick_rate", s.sched.Period(),
		"frame_skip", s.sched.FrameSkip(),
		"keys", s.keys.Len())

	s.driver.Start(s.frame)
	return nil
}

// Stop halts the driver and detaches the source
// Idempotent; no notifications fire after it returns, and raw input arriving
// later is dropped.
func (s *Shell) Stop() {
	s.stopOnce.Do(func() {
		s.disposed.Store(true)
		s.driver.Stop()
		if s.source != nil {
			s.source.Detach()
		}
		s.logger.Info("shell stopped",
			"ticks", s.sched.TickCount(),
			"frames", s.sched.FrameCount())
	})
}

// frame is the driver callback: one catch-up pass plus one render emit
func (s *Shell) frame() {
	if s.disposed.Load() {
		return
	}
	s.sched.Frame()
}

// On subscribes a handler to a notification channel, when the configured
// sink supports subscription. Returns the subscription id.
func (s *Shell) On(ch events.Channel, fn events.Handler) (int, error) {
	sub, ok := s.sink.(events.Subscriber)
	if !ok {
		return 0, events.ErrNotSubscribable
	}
	return sub.Subscribe(ch, fn), nil
}

// Bind merges physical keys into the binding for a virtual name
func (s *Shell) Bind(virtualName string, physical ...string) {
	s.bindings.Bind(virtualName, physical...)
}

// Unbind removes the binding for a virtual name
func (s *Shell) Unbind(virtualName string) {
	s.bindings.Unbind(virtualName)
}

// Down reports whether name is held this tick
func (s *Shell) Down(name string) bool {
	return s.bindings.Resolve(name, s.state.Key)
}

// WasDown reports whether name was held last tick
func (s *Shell) WasDown(name string) bool {
	return s.bindings.Resolve(name, s.state.PrevKey)
}

// Pressed reports the down edge: held now, not held last tick
func (s *Shell) Pressed(name string) bool {
	return s.Down(name) && !s.WasDown(name)
}

// Released reports the up edge: not held now, held last tick
func (s *Shell) Released(name string) bool {
	return !s.Down(name) && s.WasDown(name)
}

// Up reports whether name is not held this tick
func (s *Shell) Up(name string) bool {
	return !s.Down(name)
}

// WasUp reports whether name was not held last tick
func (s *Shell) WasUp(name string) bool {
	return !s.WasDown(name)
}

// Pause freezes the simulation, capturing progress into the current tick
func (s *Shell) Pause() {
	s.sched.Pause()
	s.logger.Debug("shell paused", "ticks", s.sched.TickCount())
}

// Resume restarts the simulation where the pause left it
func (s *Shell) Resume() {
	s.sched.Resume()
	s.logger.Debug("shell resumed", "ticks", s.sched.TickCount())
}

// Paused returns the pause state
func (s *Shell) Paused() bool {
	return s.sched.Paused()
}

// Fraction returns the current render interpolation fraction (0..1)
func (s *Shell) Fraction() float64 {
	return s.sched.Fraction()
}

// TickCount returns the number of simulation ticks executed
func (s *Shell) TickCount() uint64 {
	return s.sched.TickCount()
}

// FrameCount returns the number of frame invocations completed
func (s *Shell) FrameCount() uint64 {
	return s.sched.FrameCount()
}

// Pointer returns the current pointer position
func (s *Shell) Pointer() (x, y int) {
	return s.state.Pointer()
}

// PrevPointer returns the pointer position as of the last tick
func (s *Shell) PrevPointer() (x, y int) {
	return s.state.PrevPointer()
}

// Keys returns the canonical key registry this shell resolves against
func (s *Shell) Keys() *input.KeySpace {
	return s.keys
}

// Metrics returns the engine metric registry
// Names: engine.ticks, engine.frames, engine.drops, engine.tick_ms,
// engine.render_ms.
func (s *Shell) Metrics() *status.Registry {
	return s.metrics
}
