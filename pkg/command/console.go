package command

import (
	"errors"
	"strings"

	"github.com/rfdavies/gciscope/pkg/sim"
)

// Console is the operator-facing command channel: it echoes input, runs
// the interpreter, applies accepted commands, and narrates the outcome
// through the log sink. Both frontends feed their input line through here
// so the radio traffic reads the same everywhere.
type Console struct {
	interp *Interpreter
	logger sim.Logger
}

// NewConsole wires an interpreter to a log sink.
func NewConsole(interp *Interpreter, logger sim.Logger) *Console {
	if logger == nil {
		logger = sim.NopLogger
	}
	return &Console{interp: interp, logger: logger}
}

// Handle processes one line of operator input end to end. Blank input is
// ignored. Every non-blank attempt produces exactly one outcome line;
// a success additionally produces the pilot acknowledgment, and an
// out-of-bounds target also draws the pilot's refusal, as heard on the
// original GCI circuits.
func (c *Console) Handle(raw string) {
	line := strings.ToUpper(strings.TrimSpace(raw))
	if line == "" {
		return
	}

	c.logger.Log(sim.SourceCommand, "%s", line)

	cmd, err := c.interp.Interpret(line)
	if err != nil {
		c.logger.Log(sim.SourceSystem, "ERROR: %s.", capitalize(err.Error()))
		if errors.Is(err, ErrOutOfBounds) {
			c.logger.Log(sim.SourcePilot, "ACFT %s: Negative, control. That position is outside sector limits.",
				strings.Fields(line)[0])
		}
		return
	}

	c.interp.Apply(cmd)
	c.logger.Log(sim.SourceSystem, "Vector accepted: %s to X=%d, Y=%d.", cmd.Code, int(cmd.X), int(cmd.Y))
	c.logger.Log(sim.SourcePilot, "ACFT %s: Roger, turning to intercept coordinates X=%d, Y=%d. Tally ho!",
		cmd.Code, int(cmd.X), int(cmd.Y))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
