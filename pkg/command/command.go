// Package command parses and applies operator intercept commands.
//
// The grammar is deliberately terse, the way a GCI controller would type
// under pressure: exactly three whitespace-separated tokens, CODE X Y,
// with X and Y in virtual tactical coordinates.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rfdavies/gciscope/pkg/geo"
)

// Interpretation errors. All are recoverable: a failed command logs a line
// and mutates nothing.
var (
	// ErrMalformedSyntax means the input did not have exactly three tokens.
	ErrMalformedSyntax = errors.New("invalid format, use: [CODE] [X] [Y] (e.g., SPITF 400 150)")

	// ErrInvalidNumber means X or Y was not parseable as a number.
	ErrInvalidNumber = errors.New("coordinates must be numbers")

	// ErrUnknownAircraft means the code matched nothing in the fleet.
	ErrUnknownAircraft = errors.New("aircraft code not found")

	// ErrOutOfBounds means the destination lies outside the tactical scope.
	ErrOutOfBounds = errors.New("destination outside of tactical scope")
)

// Retarget is a validated operator command: send one aircraft to a new
// destination. Applying it overrides whatever the autonomous destination
// policy had planned.
type Retarget struct {
	// Code is the canonical aircraft code, resolved case-insensitively
	Code string

	// X, Y are the destination in virtual coordinates, already
	// bounds-checked
	X float64
	Y float64
}

// Fleet is the slice of the simulation the interpreter needs: code
// resolution and the destination override.
type Fleet interface {
	Resolve(code string) (string, bool)
	SetDestination(code string, dest geo.Point)
}

// Interpreter validates raw operator input against the fleet manifest and
// the virtual bounds.
type Interpreter struct {
	fleet      Fleet
	virtualMax float64
}

// NewInterpreter creates an interpreter for a fleet and a virtual space of
// side virtualMax.
func NewInterpreter(fleet Fleet, virtualMax float64) *Interpreter {
	return &Interpreter{fleet: fleet, virtualMax: virtualMax}
}

// Interpret parses and validates one line of operator input. The input is
// upper-cased before parsing, so codes match case-insensitively. It does
// not mutate any state; a successful parse returns the command for Apply.
func (in *Interpreter) Interpret(raw string) (Retarget, error) {
	parts := strings.Fields(strings.ToUpper(raw))

	if len(parts) != 3 {
		return Retarget{}, ErrMalformedSyntax
	}

	x, errX := strconv.ParseFloat(parts[1], 64)
	y, errY := strconv.ParseFloat(parts[2], 64)
	if errX != nil || errY != nil {
		return Retarget{}, ErrInvalidNumber
	}

	code, ok := in.fleet.Resolve(parts[0])
	if !ok {
		return Retarget{}, fmt.Errorf("%w: %s", ErrUnknownAircraft, parts[0])
	}

	if !(geo.Point{X: x, Y: y}).InBounds(in.virtualMax) {
		return Retarget{}, fmt.Errorf("%w: (%d, %d) not in 0-%d",
			ErrOutOfBounds, int(x), int(y), int(in.virtualMax))
	}

	return Retarget{Code: code, X: x, Y: y}, nil
}

// Apply overwrites the aircraft's destination with the command's target.
// The aircraft's trail is left alone; a stale trail pointing at the old
// destination decays within a few ticks as fresh positions replace it.
func (in *Interpreter) Apply(cmd Retarget) {
	in.fleet.SetDestination(cmd.Code, geo.Point{X: cmd.X, Y: cmd.Y})
}
