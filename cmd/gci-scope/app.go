package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rfdavies/gciscope/pkg/command"
	"github.com/rfdavies/gciscope/pkg/config"
	"github.com/rfdavies/gciscope/pkg/geo"
	"github.com/rfdavies/gciscope/pkg/sim"
)

// App represents the main application: simulation, clock, and the tview
// layout around the scope.
type App struct {
	cfg *config.Config

	// Simulation
	world   *sim.World
	console *command.Console
	clock   *sim.Clock

	// UI components
	tviewApp   *tview.Application
	scope      *ScopeView
	roster     *tview.TextView
	logs       *LogManager
	input      *tview.InputField
	sidebar    *tview.Flex
	rootLayout *tview.Flex

	// State
	mu         sync.Mutex
	scale      geo.Scale
	sweepAngle float64
	fullscreen bool
	cancel     context.CancelFunc
}

// NewApp wires the simulation to a fresh tview UI.
func NewApp(cfg *config.Config, rng *rand.Rand) *App {
	a := &App{
		cfg:   cfg,
		clock: sim.NewClock(cfg.Timing.TickInterval()),
		scale: geo.NewScale(0, cfg.Scope.VirtualMax, cfg.Scope.RadiusFactor),
	}

	a.setupUI()

	policy := sim.NewAnnulusPolicy(rng, cfg.Scope.VirtualMax, cfg.Scope.RadiusFactor)
	a.world = sim.NewWorld(cfg, rng, policy, a.logs)
	a.console = command.NewConsole(
		command.NewInterpreter(a.world, cfg.Scope.VirtualMax),
		a.logs,
	)

	a.logs.Log(sim.SourceSystem, "Radar powered up. Scanning initiated.")
	a.logs.Log(sim.SourceSystem, "INSTRUCTIONS: Command format: [CODE] [X] [Y] where X, Y are 0-%d (e.g., SPITF 400 150).",
		int(cfg.Scope.VirtualMax))
	a.logs.Log(sim.SourceSystem, "Aircraft Codes: %s", strings.Join(a.world.Codes(), ", "))

	return a
}

// setupUI initializes the user interface
func (a *App) setupUI() {
	a.tviewApp = tview.NewApplication()

	a.scope = NewScopeView(a)
	a.logs = NewLogManager(200)
	a.createRosterPanel()
	a.createInputField()
	a.createLayout()

	a.tviewApp.SetInputCapture(a.handleKeyboard)
}

// createRosterPanel creates the fleet status panel.
func (a *App) createRosterPanel() {
	a.roster = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.roster.SetBorder(true).SetTitle(" Fleet ")
}

// createInputField creates the operator command line.
func (a *App) createInputField() {
	a.input = tview.NewInputField().
		SetLabel("COMMAND: ").
		SetLabelColor(tcell.GetColor(a.cfg.Display.Glow)).
		SetFieldBackgroundColor(tcell.ColorBlack).
		SetFieldTextColor(tcell.GetColor(a.cfg.Display.Glow))
	a.input.SetBorder(true)

	a.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		line := a.input.GetText()
		a.input.SetText("")
		a.console.Handle(line)
	})
}

// createLayout assembles scope (left) and console sidebar (right).
func (a *App) createLayout() {
	a.sidebar = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.roster, 0, 3, false).
		AddItem(a.logs.GetView(), 0, 6, false).
		AddItem(a.input, 3, 0, true)

	a.rootLayout = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.scope, 0, 7, false).
		AddItem(a.sidebar, 0, 3, true)

	a.tviewApp.SetRoot(a.rootLayout, true)
	a.tviewApp.SetFocus(a.input)
}

// handleKeyboard handles global keyboard input. Keys the command line
// needs for typing are only intercepted while the scope has focus.
func (a *App) handleKeyboard(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyCtrlC:
		a.Stop()
		return nil

	case event.Key() == tcell.KeyTab:
		if a.tviewApp.GetFocus() == a.input {
			a.tviewApp.SetFocus(a.scope)
		} else {
			a.tviewApp.SetFocus(a.input)
		}
		return nil

	case event.Key() == tcell.KeyF11:
		a.toggleFullscreen()
		return nil

	case event.Key() == tcell.KeyEscape:
		a.exitFullscreen()
		return nil
	}

	if a.tviewApp.GetFocus() != a.input {
		switch event.Rune() {
		case 'q':
			a.Stop()
			return nil
		case 'f':
			a.toggleFullscreen()
			return nil
		}
	}

	return event
}

// toggleFullscreen hides or restores the console sidebar so the scope
// fills the terminal.
func (a *App) toggleFullscreen() {
	a.mu.Lock()
	a.fullscreen = !a.fullscreen
	fullscreen := a.fullscreen
	a.mu.Unlock()

	a.applyFullscreen(fullscreen)
}

// exitFullscreen restores the sidebar.
func (a *App) exitFullscreen() {
	a.mu.Lock()
	if !a.fullscreen {
		a.mu.Unlock()
		return
	}
	a.fullscreen = false
	a.mu.Unlock()

	a.applyFullscreen(false)
}

func (a *App) applyFullscreen(fullscreen bool) {
	a.rootLayout.Clear()
	if fullscreen {
		a.rootLayout.AddItem(a.scope, 0, 1, true)
		a.tviewApp.SetFocus(a.scope)
	} else {
		a.rootLayout.
			AddItem(a.scope, 0, 7, false).
			AddItem(a.sidebar, 0, 3, true)
		a.tviewApp.SetFocus(a.input)
	}
}

// updateScale rebuilds the scaling for a new display extent. Any extent
// change throws away the display-space trails, which were captured at the
// old scale.
func (a *App) updateScale(extent float64) geo.Scale {
	a.mu.Lock()
	defer a.mu.Unlock()

	if extent != a.scale.Extent() {
		a.scale = geo.NewScale(extent, a.cfg.Scope.VirtualMax, a.cfg.Scope.RadiusFactor)
		a.world.ClearTrails()
	}
	return a.scale
}

// currentScale returns the scale the last draw established.
func (a *App) currentScale() geo.Scale {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scale
}

// advanceSweep rotates the sweep line one tick and returns the new angle.
func (a *App) advanceSweep() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sweepAngle += a.cfg.Timing.SweepSpeed
	if a.sweepAngle > 2*math.Pi {
		a.sweepAngle -= 2 * math.Pi
	}
	return a.sweepAngle
}

// sweep returns the current sweep angle.
func (a *App) sweep() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sweepAngle
}

// updateRoster refreshes the fleet status panel from a snapshot.
func (a *App) updateRoster(tracks []sim.Track) {
	var text strings.Builder
	for _, track := range tracks {
		text.WriteString(fmt.Sprintf("[yellow]%-7s[-] [white]%s[-]\n", track.Code, track.Label))
	}
	a.roster.SetText(text.String())
}

// Run starts the clock and the tview event loop.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	go a.clock.Run(ctx, a.tick)

	return a.tviewApp.Run()
}

/// tick is one simulation step: advance the fleet under the current scale,
// rotate the sweep, and request a redraw. It runs on the clock goroutine;
// the world's own lock keeps it safe against the command path on the
// tview event loop.
func (a *App) tick() {
	scale := a.currentScale()
	a.world.Tick(scale)
	a.advanceSweep()

	tracks := a.world.Snapshot(scale)
	a.tviewApp.QueueUpdateDraw(func() {
		a.updateRoster(tracks)
	})
}

// Stop shuts the clock down and leaves the tview event loop.
func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.tviewApp.Stop()
}
