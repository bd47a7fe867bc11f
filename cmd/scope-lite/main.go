package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfdavies/gciscope/pkg/command"
	"github.com/rfdavies/gciscope/pkg/config"
	"github.com/rfdavies/gciscope/pkg/geo"
	"github.com/rfdavies/gciscope/pkg/sim"
)

// Log tail dimensions
const (
	logTailLines = 8
	sidebarWidth = 44
)

// logTail is a bounded in-memory log sink for the sidebar. It satisfies
// sim.Logger.
type logTail struct {
	mu    sync.Mutex
	lines []logLine
	max   int
}

type logLine struct {
	source  sim.Source
	message string
}

func newLogTail(max int) *logTail {
	return &logTail{max: max}
}

func (l *logTail) Log(source sim.Source, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, logLine{source: source, message: fmt.Sprintf(format, args...)})
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

func (l *logTail) tail() []logLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]logLine, len(l.lines))
	copy(out, l.lines)
	return out
}

type model struct {
	cfg        *config.Config
	world      *sim.World
	console    *command.Console
	logs       *logTail
	scale      geo.Scale
	sweepAngle float64
	input      string
	width      int
	height     int
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Timing.TickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := m.input
			m.input = ""
			m.console.Handle(line)
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Largest square display that fits beside the sidebar, in row
		// units. Display history under the old extent is meaningless,
		// so trails go with it.
		extent := float64(m.height - 4)
		if avail := float64(m.width-sidebarWidth-4) / 2; avail < extent {
			extent = avail
		}
		if extent < 0 {
			extent = 0
		}
		m.scale = geo.NewScale(extent, m.cfg.Scope.VirtualMax, m.cfg.Scope.RadiusFactor)
		m.world.ClearTrails()

	case tickMsg:
		m.world.Tick(m.scale)
		m.sweepAngle += m.cfg.Timing.SweepSpeed
		if m.sweepAngle > 2*math.Pi {
			m.sweepAngle -= 2 * math.Pi
		}
		return m, m.tick()
	}

	return m, nil
}

// cell is one scope character with its color; an empty color renders
// plain.
type cell struct {
	ch    rune
	color string
}

func (m model) View() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.cfg.Display.Glow)).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	s.WriteString(titleStyle.Render("GCI SCOPE LITE"))
	s.WriteString("\n")

	scope := m.renderScope()
	side := m.renderSidebar()

	// Combine side by side
	scopeLines := strings.Split(scope, "\n")
	sideLines := strings.Split(side, "\n")

	maxLines := len(scopeLines)
	if len(sideLines) > maxLines {
		maxLines = len(sideLines)
	}

	scopeWidth := int(m.scale.Extent())*2 + 2
	for i := 0; i < maxLines; i++ {
		if i < len(scopeLines) {
			s.WriteString(scopeLines[i])
			pad := scopeWidth - lipgloss.Width(scopeLines[i])
			if pad > 0 {
				s.WriteString(strings.Repeat(" ", pad))
			}
		} else {
			s.WriteString(strings.Repeat(" ", scopeWidth))
		}
		s.WriteString("  ")
		if i < len(sideLines) {
			s.WriteString(sideLines[i])
		}
		s.WriteString("\n")
	}

	inputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Display.Glow))
	s.WriteString(inputStyle.Render("COMMAND> " + m.input + "_"))
	s.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Format: [CODE] [X] [Y]   ENTER: Send  ESC: Quit"))

	return s.String()
}

func (m model) renderScope() string {
	extent := int(m.scale.Extent())
	if extent < 4 {
		return "terminal too small"
	}

	width := extent * 2
	grid := make([][]cell, extent)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	plot := func(x, y float64, ch rune, color string, force bool) {
		cx, cy := int(x*2), int(y)
		if cx < 0 || cx >= width || cy < 0 || cy >= extent {
			return
		}
		if !force && grid[cy][cx].ch != ' ' {
			return
		}
		grid[cy][cx] = cell{ch: ch, color: color}
	}

	center := m.scale.Center()
	radius := m.scale.ScopeRadius()

	// Scope edge and range rings
	segments := int(radius * 8)
	if segments < 16 {
		segments = 16
	}
	rings := m.cfg.Scope.RangeRings
	for ring := 1; ring <= rings; ring++ {
		r := radius / float64(rings) * float64(ring)
		color := m.cfg.Display.Dim
		step := 2
		if ring == rings {
			color = m.cfg.Display.Glow
			step = 1
		}
		for i := 0; i < segments; i += step {
			angle := 2 * math.Pi * float64(i) / float64(segments)
			plot(center.X+r*math.Cos(angle), center.Y+r*math.Sin(angle), '·', color, false)
		}
	}

	// Crosshairs
	for i := 0; i < extent; i++ {
		plot(float64(i), center.Y, '─', m.cfg.Display.Dim, false)
		plot(center.X, float64(i), '│', m.cfg.Display.Dim, false)
	}

	// Sweep line
	for r := 0.0; r < radius; r += 0.5 {
		plot(center.X+r*math.Cos(m.sweepAngle), center.Y+r*math.Sin(m.sweepAngle), '•', m.cfg.Display.Glow, true)
	}

	// Aircraft
	for _, track := range m.world.Snapshot(m.scale) {
		n := len(track.Trail)
		for i, tp := range track.Trail {
			if i < n-1 {
				plot(tp.X, tp.Y, '·', m.cfg.Display.Dim, false)
			} else {
				plot(tp.X, tp.Y, '·', track.Color, false)
			}
		}
		plot(track.Dest.X, track.Dest.Y, '+', m.cfg.Display.Dim, false)
		plot(track.Pos.X, track.Pos.Y, '●', track.Color, true)

		cx, cy := int(track.Pos.X*2), int(track.Pos.Y)+1
		for i, ch := range track.Code {
			if cx+i >= 0 && cx+i < width && cy >= 0 && cy < extent {
				grid[cy][cx+i] = cell{ch: ch, color: track.Color}
			}
		}
	}

	// Render grid with a border
	var sky strings.Builder
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	sky.WriteString(borderStyle.Render("┌" + strings.Repeat("─", width) + "┐"))
	sky.WriteString("\n")

	styles := map[string]lipgloss.Style{}
	for y := 0; y < extent; y++ {
		sky.WriteString(borderStyle.Render("│"))
		for x := 0; x < width; x++ {
			c := grid[y][x]
			if c.color == "" {
				sky.WriteRune(c.ch)
				continue
			}
			style, ok := styles[c.color]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.color))
				styles[c.color] = style
			}
			sky.WriteString(style.Render(string(c.ch)))
		}
		sky.WriteString(borderStyle.Render("│"))
		sky.WriteString("\n")
	}
	sky.WriteString(borderStyle.Render("└" + strings.Repeat("─", width) + "┘"))

	return sky.String()
}

func (m model) renderSidebar() string {
	var side strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.cfg.Display.Glow))
	codeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	side.WriteString(headerStyle.Render("Fleet:"))
	side.WriteString("\n")
	for _, track := range m.world.Snapshot(m.scale) {
		side.WriteString(fmt.Sprintf("%s %s\n",
			codeStyle.Render(fmt.Sprintf("%-7s", track.Code)),
			dimStyle.Render(track.Label)))
	}
	side.WriteString("\n")

	side.WriteString(headerStyle.Render("Operations Log:"))
	side.WriteString("\n")

	lines := m.logs.tail()
	if len(lines) > logTailLines {
		lines = lines[len(lines)-logTailLines:]
	}
	for _, line := range lines {
		style := dimStyle
		switch line.source {
		case sim.SourceCommand:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
		case sim.SourcePilot:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		case sim.SourceSystem:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Display.Glow))
		}
		msg := line.message
		if len(msg) > sidebarWidth {
			msg = msg[:sidebarWidth-1] + "…"
		}
		side.WriteString(style.Render(fmt.Sprintf("%-7s %s", line.source, msg)))
		side.WriteString("\n")
	}

	return side.String()
}

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	seed := flag.Int64("seed", 0, "simulation seed (0 picks a time-based seed)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	logs := newLogTail(200)
	policy := sim.NewAnnulusPolicy(rng, cfg.Scope.VirtualMax, cfg.Scope.RadiusFactor)
	world := sim.NewWorld(cfg, rng, policy, logs)
	console := command.NewConsole(command.NewInterpreter(world, cfg.Scope.VirtualMax), logs)

	logs.Log(sim.SourceSystem, "Radar powered up. Scanning initiated.")
	logs.Log(sim.SourceSystem, "Aircraft Codes: %s", strings.Join(world.Codes(), ", "))

	m := model{
		cfg:     cfg,
		world:   world,
		console: console,
		logs:    logs,
		scale:   geo.NewScale(0, cfg.Scope.VirtualMax, cfg.Scope.RadiusFactor),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
