package main

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// fadeToBlack blends an aircraft color toward black for the afterglow
// trail. fade runs from 0 (fully dark) to 1 (full brightness); an
// unparseable hex string falls back to the phosphor green.
func fadeToBlack(hex string, fade float64) tcell.Color {
	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex("#00FF00")
	}
	if fade < 0 {
		fade = 0
	}
	if fade > 1 {
		fade = 1
	}

	black := colorful.Color{}
	blended := black.BlendRgb(base, fade)

	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
