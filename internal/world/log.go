package world

import "fmt"

// MessageLog is the ordered append-only game log shown to the player. It is
// shared across dungeon depths: the session threads one log through every
// world state it creates.
type MessageLog struct {
	entries []string
}

func NewMessageLog() *MessageLog {
	return &MessageLog{entries: make([]string, 0, 128)}
}

func (l *MessageLog) Append(msg string) {
	l.entries = append(l.entries, msg)
}

func (l *MessageLog) Appendf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Tail returns the last n entries, oldest first.
func (l *MessageLog) Tail(n int) []string {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}

func (l *MessageLog) Len() int { return len(l.entries) }
