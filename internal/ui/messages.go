package ui

import (
	"sync"
	"time"
)

// LogEntry is one recorded status message.
type LogEntry struct {
	Time time.Time
	Text string
}

// MessageLog keeps the most recent status messages for the log overlay.
// Writers and the render loop run on different goroutines.
type MessageLog struct {
	mu      sync.Mutex
	entries []LogEntry
	limit   int
}

// NewMessageLog creates a log keeping at most limit entries.
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{
		entries: make([]LogEntry, 0, limit),
		limit:   limit,
	}
}

// Add records a message. Empty messages are dropped.
func (ml *MessageLog) Add(text string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if text == "" {
		return
	}

	ml.entries = append(ml.entries, LogEntry{Time: time.Now(), Text: text})
	if len(ml.entries) > ml.limit {
		ml.entries = ml.entries[len(ml.entries)-ml.limit:]
	}
}

// Recent returns up to n entries, newest first.
func (ml *MessageLog) Recent(n int) []LogEntry {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.entries) {
		n = len(ml.entries)
	}
	result := make([]LogEntry, n)
	for i := 0; i < n; i++ {
		result[i] = ml.entries[len(ml.entries)-1-i]
	}
	return result
}
