package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/rfdavies/gciscope/pkg/geo"
)

// fakeFleet is a minimal Fleet with a fixed manifest.
type fakeFleet struct {
	codes map[string]string
	dests map[string]geo.Point
}

func newFakeFleet(codes ...string) *fakeFleet {
	f := &fakeFleet{
		codes: make(map[string]string),
		dests: make(map[string]geo.Point),
	}
	for _, c := range codes {
		f.codes[strings.ToUpper(c)] = c
	}
	return f
}

func (f *fakeFleet) Resolve(code string) (string, bool) {
	c, ok := f.codes[strings.ToUpper(code)]
	return c, ok
}

func (f *fakeFleet) SetDestination(code string, dest geo.Point) {
	f.dests[code] = dest
}

// TestInterpret runs the command grammar table.
func TestInterpret(t *testing.T) {
	fleet := newFakeFleet("FW190", "SPITF", "BF109", "P51MUS", "MOSSI")
	interp := NewInterpreter(fleet, 600)

	tests := []struct {
		name    string
		input   string
		want    Retarget
		wantErr error
	}{
		{
			name:  "valid retarget",
			input: "SPITF 400 150",
			want:  Retarget{Code: "SPITF", X: 400, Y: 150},
		},
		{
			name:  "lowercase code resolves",
			input: "spitf 400 150",
			want:  Retarget{Code: "SPITF", X: 400, Y: 150},
		},
		{
			name:  "boundary coordinates accepted",
			input: "FW190 0 600",
			want:  Retarget{Code: "FW190", X: 0, Y: 600},
		},
		{
			name:  "fractional coordinates accepted",
			input: "MOSSI 123.5 88.25",
			want:  Retarget{Code: "MOSSI", X: 123.5, Y: 88.25},
		},
		{
			name:    "x out of bounds",
			input:   "SPITF 700 150",
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "negative y out of bounds",
			input:   "SPITF 100 -1",
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "unknown aircraft",
			input:   "GHOST 1 1",
			wantErr: ErrUnknownAircraft,
		},
		{
			name:    "non-numeric coordinate",
			input:   "SPITF abc 1",
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "too few tokens",
			input:   "SPITF 1",
			wantErr: ErrMalformedSyntax,
		},
		{
			name:    "too many tokens",
			input:   "SPITF 1 2 3",
			wantErr: ErrMalformedSyntax,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMalformedSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Interpret(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Interpret(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Interpret(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Interpret(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestUnknownAircraftBeforeBounds tests that identity is validated against
// the manifest even when the coordinates are also bad.
func TestUnknownAircraftBeforeBounds(t *testing.T) {
	interp := NewInterpreter(newFakeFleet("SPITF"), 600)

	_, err := interp.Interpret("GHOST 900 900")
	if !errors.Is(err, ErrUnknownAircraft) {
		t.Errorf("Interpret error = %v, want ErrUnknownAircraft", err)
	}
}

// TestApplyOverwritesDestination tests that a validated command lands in
// the fleet as a destination override.
func TestApplyOverwritesDestination(t *testing.T) {
	fleet := newFakeFleet("SPITF")
	interp := NewInterpreter(fleet, 600)

	cmd, err := interp.Interpret("SPITF 400 150")
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	interp.Apply(cmd)

	if fleet.dests["SPITF"] != (geo.Point{X: 400, Y: 150}) {
		t.Errorf("Destination = %v, want (400, 150)", fleet.dests["SPITF"])
	}
}
