package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is the stock driver cadence (~60 Hz)
const DefaultFrameInterval = 16 * time.Millisecond

// FrameDriver is the frame-pacing signal: it invokes the frame callback once
// per display refresh (or equivalent cadence) until stopped. The scheduler
// has exactly one driver; all catch-up ticks run inside its callback.
type FrameDriver interface {
	Start(frame func())
	Stop()
}

// TimerDriver paces frames with a re-armed timer on a dedicated goroutine
// Fixed cadence with drift correction: a slow frame pushes the schedule
// forward instead of bursting to catch up.
type TimerDriver struct {
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTimerDriver creates a driver at the given frame interval
// Non-positive intervals select DefaultFrameInterval
func NewTimerDriver(interval time.Duration) *TimerDriver {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TimerDriver{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the frame loop; second and later calls are no-ops
func (d *TimerDriver) Start(frame func()) {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.frameLoop(frame)
	}
}

// Stop halts the frame loop and waits for it to exit
// Idempotent; no frame callbacks fire after Stop returns
func (d *TimerDriver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

func (d *TimerDriver) frameLoop(frame func()) {
	defer d.wg.Done()

	next := time.Now().Add(d.interval)
	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-timer.C:
		}

		frame()

		now := time.Now()
		next = next.Add(d.interval)
		if now.Sub(next) > 2*d.interval {
			next = now.Add(d.interval)
		}

		sleep := next.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
