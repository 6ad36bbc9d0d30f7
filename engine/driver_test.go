package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerDriverDefaultInterval(t *testing.T) {
	d := NewTimerDriver(0)
	if d.interval != DefaultFrameInterval {
		t.Errorf("interval = %v, want %v", d.interval, DefaultFrameInterval)
	}
}

func TestTimerDriverDelivery(t *testing.T) {
	d := NewTimerDriver(10 * time.Millisecond)

	var frames atomic.Int64
	d.Start(func() { frames.Add(1) })
	defer d.Stop()

	time.Sleep(150 * time.Millisecond)

	count := frames.Load()
	// Allow generous timing variance
	if count < 8 {
		t.Errorf("frames after 150ms = %d, expected at least 8", count)
	}
	if count > 20 {
		t.Errorf("frames after 150ms = %d, expected at most 20", count)
	}
}

func TestTimerDriverStopIdempotent(t *testing.T) {
	d := NewTimerDriver(10 * time.Millisecond)

	var frames atomic.Int64
	d.Start(func() { frames.Add(1) })

	time.Sleep(50 * time.Millisecond)

	// Multiple stops must not panic or hang
	d.Stop()
	d.Stop()
	d.Stop()

	initial := frames.Load()
	time.Sleep(50 * time.Millisecond)

	if final := frames.Load(); final != initial {
		t.Errorf("frame count increased after stop: %d -> %d", initial, final)
	}
}

func TestTimerDriverStartIdempotent(t *testing.T) {
	d := NewTimerDriver(5 * time.Millisecond)
	defer d.Stop()

	var frames atomic.Int64
	d.Start(func() { frames.Add(1) })
	d.Start(func() { frames.Add(100) })

	time.Sleep(40 * time.Millisecond)

	// The second Start must not have attached its callback
	if count := frames.Load(); count >= 100 {
		t.Errorf("frame count = %d, second Start callback ran", count)
	}
}

func TestTimerDriverGoroutineLeak(t *testing.T) {
	// Create and destroy several drivers; a leak would hang the test on Stop
	for i := 0; i < 10; i++ {
		d := NewTimerDriver(5 * time.Millisecond)
		d.Start(func() {})
		time.Sleep(10 * time.Millisecond)
		d.Stop()
	}
}
