package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rfdavies/gciscope/pkg/geo"
	"github.com/rfdavies/gciscope/pkg/sim"
)

// ScopeView is a custom tview primitive that renders the radar scope with
// tcell. It is a pure render sink: everything it draws comes from the
// world snapshot and the current scale; it never mutates simulation state
// beyond establishing the scale for the drawable extent it was given.
//
// Terminal cells are roughly twice as tall as wide, so the display square
// is laid out in row units and every X coordinate is doubled into columns
// to keep the scope circular.
type ScopeView struct {
	*tview.Box
	app *App
}

// NewScopeView creates the scope primitive.
func NewScopeView(app *App) *ScopeView {
	sv := &ScopeView{
		Box: tview.NewBox(),
		app: app,
	}
	sv.SetBorder(true).SetTitle(" GCI RADAR ")
	return sv
}

// cell converts a display-space point (row units, origin at the top-left
// of the display square) to an absolute screen cell.
type plotter struct {
	y0      int // top row of the display square
	originX int // leftmost column of the display square
}

func (p plotter) cell(x, y float64) (int, int) {
	return p.originX + int(x*2), p.y0 + int(y)
}

// Draw renders grid, sweep, and aircraft for the current frame.
func (sv *ScopeView) Draw(screen tcell.Screen) {
	sv.Box.DrawForSubclass(screen, sv)

	x, y, width, height := sv.GetInnerRect()
	if width < 4 || height < 4 {
		return
	}

	// Largest square display area that fits, in row units.
	extent := float64(height)
	if float64(width)/2 < extent {
		extent = float64(width) / 2
	}

	// Resize reaction: rebuild the scale and drop stale trails.
	scale := sv.app.updateScale(extent)

	p := plotter{
		y0:      y + (height-int(extent))/2,
		originX: x + (width-int(extent*2))/2,
	}

	glow := tcell.StyleDefault.Foreground(tcell.GetColor(sv.app.cfg.Display.Glow))
	dim := tcell.StyleDefault.Foreground(tcell.GetColor(sv.app.cfg.Display.Dim))

	center := scale.Center()
	radius := scale.ScopeRadius()

	sv.drawGrid(screen, p, scale, glow, dim)
	sv.drawSweep(screen, p, center, radius, glow)

	for _, track := range sv.app.world.Snapshot(scale) {
		sv.drawTrack(screen, p, track, dim)
	}
}

// drawGrid draws the static scope furniture: edge circle, range rings,
// crosshairs, and coordinate tick labels.
func (sv *ScopeView) drawGrid(screen tcell.Screen, p plotter, scale geo.Scale, glow, dim tcell.Style) {
	center := scale.Center()
	radius := scale.ScopeRadius()
	extent := scale.Extent()

	// Scope edge
	drawCircle(screen, p, center.X, center.Y, radius, '·', glow, 1)

	// Concentric range rings, dashed
	rings := sv.app.cfg.Scope.RangeRings
	for i := 1; i <= rings; i++ {
		r := radius / float64(rings) * float64(i)
		if i < rings {
			drawCircle(screen, p, center.X, center.Y, r, '·', dim, 2)
		}
	}

	// Crosshairs
	for fx := 0.0; fx < extent; fx++ {
		cx, cy := p.cell(fx, center.Y)
		setIfEmpty(screen, cx, cy, '─', dim)
		cx, cy = p.cell(center.X, fx)
		setIfEmpty(screen, cx, cy, '│', dim)
	}

	// Coordinate tick labels: virtual values along the bottom (X) and
	// left (Y) edges of the display square.
	ticks := sv.app.cfg.Scope.GridTicks
	if ticks > 0 {
		virtualInterval := sv.app.cfg.Scope.VirtualMax / float64(ticks)
		visualInterval := extent / float64(ticks)

		for i := 0; i <= ticks; i++ {
			value := int(float64(i) * virtualInterval)
			pos := float64(i) * visualInterval

			// Tick marks on the crosshairs
			cx, cy := p.cell(pos, center.Y)
			screen.SetContent(cx, cy, '┼', nil, glow)
			cx, cy = p.cell(center.X, pos)
			screen.SetContent(cx, cy, '┼', nil, glow)

			if i < ticks {
				drawText(screen, p, pos, extent-1, fmt.Sprintf("%d X", value), glow)
			}
			if i > 0 {
				drawText(screen, p, 0, pos, fmt.Sprintf("%d Y", value), glow)
			}
		}
		drawText(screen, p, extent-4, extent-1, fmt.Sprintf("%d X", int(sv.app.cfg.Scope.VirtualMax)), glow)
	}
}

// drawSweep draws the rotating sweep line from the scope center.
func (sv *ScopeView) drawSweep(screen tcell.Screen, p plotter, center geo.Point, radius float64, glow tcell.Style) {
	angle := sv.app.sweep()
	x1, y1 := p.cell(center.X, center.Y)
	x2, y2 := p.cell(center.X+math.Cos(angle)*radius, center.Y+math.Sin(angle)*radius)
	drawLine(screen, x1, y1, x2, y2, '•', glow)
}

// drawTrack draws one aircraft: trail, primary return, destination marker
// and labels.
func (sv *ScopeView) drawTrack(screen tcell.Screen, p plotter, track sim.Track, dim tcell.Style) {
	// Afterglow trail, oldest dimmest
	n := len(track.Trail)
	for i, tp := range track.Trail {
		fade := 1.0 - float64(i+1)/float64(n+1)
		style := tcell.StyleDefault.Foreground(fadeToBlack(track.Color, fade))
		cx, cy := p.cell(tp.X, tp.Y)
		setIfEmpty(screen, cx, cy, '·', style)
	}

	color := tcell.StyleDefault.Foreground(tcell.GetColor(track.Color))

	// Destination marker, a dim cross
	dx, dy := p.cell(track.Dest.X, track.Dest.Y)
	screen.SetContent(dx-1, dy, '─', nil, dim)
	screen.SetContent(dx+1, dy, '─', nil, dim)
	screen.SetContent(dx, dy, '+', nil, dim)

	// Primary return
	cx, cy := p.cell(track.Pos.X, track.Pos.Y)
	screen.SetContent(cx, cy, '●', nil, color)

	// Code label below the dot, coordinates below that
	for i, ch := range track.Code {
		screen.SetContent(cx-len(track.Code)/2+i, cy+1, ch, nil, color)
	}
	for i, ch := range track.Label {
		screen.SetContent(cx-len(track.Label)/2+i, cy+2, ch, nil, dim)
	}
}

// setIfEmpty writes a rune only over blank cells so grid furniture never
// overdraws aircraft.
func setIfEmpty(screen tcell.Screen, x, y int, ch rune, style tcell.Style) {
	existing, _, _, _ := screen.GetContent(x, y)
	if existing == ' ' {
		screen.SetContent(x, y, ch, nil, style)
	}
}

// drawText writes a string at a display-space position.
func drawText(screen tcell.Screen, p plotter, x, y float64, text string, style tcell.Style) {
	cx, cy := p.cell(x, y)
	for i, ch := range text {
		screen.SetContent(cx+i, cy, ch, nil, style)
	}
}

// drawCircle plots a parametric circle in display space so the 2:1 cell
// aspect correction applies uniformly. step 2 gives a dashed ring.
func drawCircle(screen tcell.Screen, p plotter, cx, cy, radius float64, ch rune, style tcell.Style, step int) {
	segments := int(radius * 8)
	if segments < 16 {
		segments = 16
	}
	for i := 0; i < segments; i += step {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		sx, sy := p.cell(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		setIfEmpty(screen, sx, sy, ch, style)
	}
}

// drawLine draws a line using Bresenham's line algorithm.
func drawLine(screen tcell.Screen, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		screen.SetContent(x0, y0, ch, nil, style)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
