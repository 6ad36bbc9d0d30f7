package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gameshell/events"
	"github.com/lixenwraith/gameshell/input"
	"github.com/lixenwraith/gameshell/shell"
	"github.com/lixenwraith/gameshell/terminal"
)

// RunCmd runs the interactive demo: a box moved on a fixed simulation tick,
// drawn at frame rate with interpolation. Exercises bindings, edge queries,
// pointer drag, pause/resume and the engine metrics HUD.
type RunCmd struct {
	TickHz    float64       `help:"Simulation rate in Hz" default:"30"`
	FrameHz   float64       `help:"Frame (render) rate in Hz" default:"60"`
	FrameSkip time.Duration `help:"Catch-up budget per frame (0 = auto)"`
	Keymap    string        `help:"TOML keymap overriding the default bindings" type:"existingfile" optional:""`
	Sustain   time.Duration `help:"Key release synthesis window" default:"500ms"`
	Sound     bool          `help:"Audible click on jump" default:"true" negatable:""`
}

func defaultBindings() map[string][]string {
	return map[string][]string{
		"move-left":  {"left", "a", "h"},
		"move-right": {"right", "d", "l"},
		"move-up":    {"up", "w", "k"},
		"move-down":  {"down", "s", "j"},
		"jump":       {"space"},
		"drag":       {"mouse-1"},
		"pause":      {"p"},
		"quit":       {"q", "escape"},
	}
}

func (c *RunCmd) Run(logger *slog.Logger) error {
	if c.TickHz <= 0 {
		return fmt.Errorf("tick rate %v Hz is not positive", c.TickHz)
	}
	if c.FrameHz <= 0 {
		return fmt.Errorf("frame rate %v Hz is not positive", c.FrameHz)
	}
	tickRate := time.Duration(float64(time.Second) / c.TickHz)
	frameRate := time.Duration(float64(time.Second) / c.FrameHz)

	bindings := defaultBindings()
	if c.Keymap != "" {
		overrides, err := input.LoadBindingsFile(c.Keymap)
		if err != nil {
			return err
		}
		if bad := input.UnresolvedNames(input.Default(), overrides); bad != nil {
			logger.Warn("keymap has unresolvable key names", "names", bad)
		}
		for virtual, physical := range overrides {
			bindings[virtual] = physical
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ngameshell-demo crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sh, err := shell.New(shell.Config{
		TickRate:  tickRate,
		FrameSkip: c.FrameSkip,
		FrameRate: frameRate,
		Bindings:  bindings,
		Source:    terminal.NewScreenSource(screen, c.Sustain),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	g := newGame(screen, sh, logger, newClicker(c.Sound, logger))
	defer g.close()

	if _, err := sh.On(events.ChannelTick, g.tick); err != nil {
		return err
	}
	if _, err := sh.On(events.ChannelRender, g.render); err != nil {
		return err
	}

	if err := sh.Start(); err != nil {
		return err
	}
	defer sh.Stop()

	<-g.done
	logger.Info("demo finished",
		"ticks", sh.TickCount(),
		"frames", sh.FrameCount())
	return nil
}

// game is the demo simulation: one box, fixed-tick movement, interpolated
// drawing. Tick and render handlers run on the frame driver goroutine.
type game struct {
	screen tcell.Screen
	sh     *shell.Shell
	logger *slog.Logger
	click  *clicker

	// Box position in cell units, previous tick and current tick
	x, y         float64
	prevX, prevY float64

	// Frame-edge state for keys that must work while paused
	pauseHeld bool
	quitHeld  bool

	done     chan struct{}
	quitOnce sync.Once
}

const boxSpeed = 1.0 // cells per tick

func newGame(screen tcell.Screen, sh *shell.Shell, logger *slog.Logger, click *clicker) *game {
	w, h := screen.Size()
	g := &game{
		screen: screen,
		sh:     sh,
		logger: logger,
		click:  click,
		x:      float64(w) / 2,
		y:      float64(h) / 2,
		done:   make(chan struct{}),
	}
	g.prevX, g.prevY = g.x, g.y
	return g
}

func (g *game) quit() {
	g.quitOnce.Do(func() { close(g.done) })
}

func (g *game) close() {
	g.click.close()
}

// tick advances the simulation one fixed step
func (g *game) tick(any) {
	g.prevX, g.prevY = g.x, g.y

	if g.sh.Down("drag") {
		// Box follows the pointer while button 1 is held
		px, py := g.sh.Pointer()
		g.x, g.y = float64(px), float64(py)
	} else {
		if g.sh.Down("move-left") {
			g.x -= boxSpeed
		}
		if g.sh.Down("move-right") {
			g.x += boxSpeed
		}
		if g.sh.Down("move-up") {
			g.y -= boxSpeed
		}
		if g.sh.Down("move-down") {
			g.y += boxSpeed
		}
	}

	w, h := g.screen.Size()
	g.x = clamp(g.x, 0, float64(w-1))
	g.y = clamp(g.y, 1, float64(h-1))

	if g.sh.Pressed("jump") {
		g.click.play()
	}
	if g.sh.Released("jump") {
		g.logger.Debug("jump released", "tick", g.sh.TickCount())
	}
}

// render draws the interpolated box and the HUD
// Pause and quit are handled here against frame edges: tick edges freeze
// while the simulation is paused, frames do not.
func (g *game) render(payload any) {
	frac := payload.(float64)

	pauseDown := g.sh.Down("pause")
	if pauseDown && !g.pauseHeld {
		if g.sh.Paused() {
			g.sh.Resume()
		} else {
			g.sh.Pause()
		}
	}
	g.pauseHeld = pauseDown

	quitDown := g.sh.Down("quit")
	if quitDown && !g.quitHeld {
		g.quit()
		return
	}
	g.quitHeld = quitDown

	g.screen.Clear()

	x := g.prevX + (g.x-g.prevX)*frac
	y := g.prevY + (g.y-g.prevY)*frac
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	g.screen.SetContent(int(x+0.5), int(y+0.5), '█', nil, boxStyle)

	g.drawHUD(frac)
	g.screen.Show()
}

func (g *game) drawHUD(frac float64) {
	reg := g.sh.Metrics()
	hud := fmt.Sprintf(
		"ticks %d  frames %d  drops %d  tick %.2fms  render %.2fms  frac %.2f",
		reg.Ints.Get("engine.ticks").Load(),
		reg.Ints.Get("engine.frames").Load(),
		reg.Ints.Get("engine.drops").Load(),
		reg.Floats.Get("engine.tick_ms").Get(),
		reg.Floats.Get("engine.render_ms").Get(),
		frac,
	)
	if g.sh.Paused() {
		hud += "  [paused]"
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range hud {
		g.screen.SetContent(i, 0, r, nil, style)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
