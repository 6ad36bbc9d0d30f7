package main

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// clicker plays a short sine blip on demand
// Audio is best-effort: a failed speaker init disables it and the demo runs
// silent.
type clicker struct {
	enabled bool
	rate    beep.SampleRate
}

func newClicker(enabled bool, logger *slog.Logger) *clicker {
	if !enabled {
		return &clicker{}
	}

	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		logger.Warn("audio unavailable, continuing silent", "error", err)
		return &clicker{}
	}
	return &clicker{enabled: true, rate: rate}
}

func (c *clicker) play() {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(c.rate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(40*time.Millisecond), sine))
}

func (c *clicker) close() {
	if c.enabled {
		speaker.Close()
	}
}
