package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/rivo/tview"

	"github.com/rfdavies/gciscope/pkg/sim"
)

// LogManager manages the operations log panel and message history. It
// implements sim.Logger, so the world and the command console write
// straight into the panel.
type LogManager struct {
	// textView is the tview component for displaying logs
	textView *tview.TextView

	// messages stores recent log messages
	messages []LogMessage

	// maxMessages is the maximum number of messages to keep
	maxMessages int

	// mu protects concurrent access to messages
	mu sync.Mutex

	// autoScroll controls whether new messages auto-scroll
	autoScroll bool
}

// LogMessage represents a single log entry
type LogMessage struct {
	Time    time.Time
	Source  sim.Source
	Message string
}

// NewLogManager creates a new log manager
func NewLogManager(maxMessages int) *LogManager {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(maxMessages)

	textView.SetBorder(true).SetTitle(" Operations Log ")

	return &LogManager{
		textView:    textView,
		messages:    make([]LogMessage, 0, maxMessages),
		maxMessages: maxMessages,
		autoScroll:  true,
	}
}

// GetView returns the tview component
func (lm *LogManager) GetView() tview.Primitive {
	return lm.textView
}

// Log records a message under the given source. It satisfies sim.Logger.
func (lm *LogManager) Log(source sim.Source, format string, args ...interface{}) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	msg := LogMessage{
		Time:    time.Now(),
		Source:  source,
		Message: fmt.Sprintf(format, args...),
	}

	lm.messages = append(lm.messages, msg)

	// Trim old messages if we exceed max
	if len(lm.messages) > lm.maxMessages {
		lm.messages = lm.messages[len(lm.messages)-lm.maxMessages:]
	}

	lm.refresh()
}

// refresh updates the text view with current messages
func (lm *LogManager) refresh() {
	lm.textView.Clear()

	for _, msg := range lm.messages {
		color := lm.getColorForSource(msg.Source)
		sourceStr := fmt.Sprintf("[%s]%-7s[-]", color, msg.Source)
		timeStr := msg.Time.Format("15:04:05")

		// Format: [HH:MM:SS] SOURCE Message
		line := fmt.Sprintf("[gray]%s[-] %s [%s]%s[-]\n", timeStr, sourceStr, color, msg.Message)
		fmt.Fprint(lm.textView, line)
	}

	if lm.autoScroll {
		lm.textView.ScrollToEnd()
	}
}

// getColorForSource returns the tview color tag for a log source
func (lm *LogManager) getColorForSource(source sim.Source) string {
	switch source {
	case sim.SourceSystem:
		return "green"
	case sim.SourceCommand:
		return "yellow"
	case sim.SourcePilot:
		return "#00AAFF"
	default:
		return "white"
	}
}

// Clear removes all log messages
func (lm *LogManager) Clear() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.messages = make([]LogMessage, 0, lm.maxMessages)
	lm.textView.Clear()
}

// SetAutoScroll enables or disables automatic scrolling
func (lm *LogManager) SetAutoScroll(enabled bool) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.autoScroll = enabled
}
