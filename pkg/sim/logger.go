package sim

// Source identifies who a log line is attributed to.
type Source string

const (
	SourceSystem  Source = "SYSTEM"
	SourceCommand Source = "COMMAND"
	SourcePilot   Source = "PILOT"
)

// Logger is the sink for operator-visible traffic: system notices, echoed
// operator commands, and simulated pilot radio calls. Frontends own
// timestamping, colors, and retention; the simulation only supplies lines.
type Logger interface {
	Log(source Source, format string, args ...interface{})
}

// LoggerFunc adapts a function to the Logger interface.
type LoggerFunc func(source Source, format string, args ...interface{})

// Log calls f.
func (f LoggerFunc) Log(source Source, format string, args ...interface{}) {
	f(source, format, args...)
}

// NopLogger discards all log lines.
var NopLogger Logger = LoggerFunc(func(Source, string, ...interface{}) {})
