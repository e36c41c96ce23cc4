package game

import "strings"

// MsgPriority controls the color of a message in the outcome log.
type MsgPriority uint8

const (
	MsgInfo      MsgPriority = iota // cyan
	MsgWarning                      // yellow
	MsgCritical                     // red
	MsgDiscovery                    // green
)

// Message is a single entry in the outcome log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of outcome messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize messages.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// logWrapWidth is the panel width messages are wrapped to.
const logWrapWidth = 52

// Add appends a message, evicting the oldest if full. Long messages wrap.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, logWrapWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// wrapText splits text into lines no longer than maxWidth.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
