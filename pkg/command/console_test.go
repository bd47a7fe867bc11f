package command

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rfdavies/gciscope/pkg/sim"
)

type loggedLine struct {
	source  sim.Source
	message string
}

type captureLogger struct {
	lines []loggedLine
}

func (l *captureLogger) Log(source sim.Source, format string, args ...interface{}) {
	l.lines = append(l.lines, loggedLine{source, fmt.Sprintf(format, args...)})
}

func (l *captureLogger) bySource(s sim.Source) []string {
	var out []string
	for _, line := range l.lines {
		if line.source == s {
			out = append(out, line.message)
		}
	}
	return out
}

func newTestConsole() (*Console, *captureLogger) {
	logger := &captureLogger{}
	interp := NewInterpreter(newFakeFleet("SPITF", "FW190"), 600)
	return NewConsole(interp, logger), logger
}

// TestHandleSuccess tests the full happy path: echo, outcome, pilot ack.
func TestHandleSuccess(t *testing.T) {
	console, logger := newTestConsole()

	console.Handle("spitf 400 150")

	if got := logger.bySource(sim.SourceCommand); len(got) != 1 || got[0] != "SPITF 400 150" {
		t.Errorf("Command echo = %v, want the upper-cased input", got)
	}
	system := logger.bySource(sim.SourceSystem)
	if len(system) != 1 || !strings.Contains(system[0], "SPITF") {
		t.Errorf("System outcome lines = %v, want one naming SPITF", system)
	}
	pilot := logger.bySource(sim.SourcePilot)
	if len(pilot) != 1 || !strings.Contains(pilot[0], "Roger, turning to intercept coordinates X=400, Y=150") {
		t.Errorf("Pilot ack = %v", pilot)
	}
}

// TestHandleErrors tests that every failure produces one outcome line and
// no pilot ack (except the out-of-bounds refusal).
func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPilot  int
		wantErrPart string
	}{
		{"malformed", "SPITF 1", 0, "invalid format"},
		{"not a number", "SPITF abc 1", 0, "numbers"},
		{"unknown", "GHOST 1 1", 0, "not found"},
		{"out of bounds", "SPITF 700 150", 1, "outside of tactical scope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, logger := newTestConsole()
			console.Handle(tt.input)

			system := logger.bySource(sim.SourceSystem)
			if len(system) != 1 {
				t.Fatalf("Got %d system lines, want 1: %v", len(system), system)
			}
			if !strings.Contains(strings.ToLower(system[0]), tt.wantErrPart) {
				t.Errorf("Outcome line %q does not mention %q", system[0], tt.wantErrPart)
			}
			if pilot := logger.bySource(sim.SourcePilot); len(pilot) != tt.wantPilot {
				t.Errorf("Got %d pilot lines, want %d: %v", len(pilot), tt.wantPilot, pilot)
			}
		})
	}
}

// TestHandleBlankInput tests that empty input is silently ignored.
func TestHandleBlankInput(t *testing.T) {
	console, logger := newTestConsole()

	console.Handle("")
	console.Handle("   \t ")

	if len(logger.lines) != 0 {
		t.Errorf("Blank input produced log lines: %v", logger.lines)
	}
}
