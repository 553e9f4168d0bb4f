// Package audit records registry mutations as an append-only history.
// Events are stored as JSON Lines (JSONL) in a single file in the state
// directory.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the history file inside the state directory.
const FileName = "history.jsonl"

// EventType classifies a registry mutation.
type EventType string

const (
	EventCreate EventType = "create"
	EventAdd    EventType = "add"
	EventRemove EventType = "remove"
	EventForget EventType = "forget"
)

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Entry     string    `json:"entry"`
	Path      string    `json:"path,omitempty"`
}

// Logger writes and reads audit events.
type Logger struct {
	path string
}

// NewLogger creates a new audit logger writing to stateDir/history.jsonl.
func NewLogger(stateDir string) *Logger {
	return &Logger{path: filepath.Join(stateDir, FileName)}
}

// Path returns the history file location.
func (l *Logger) Path() string {
	return l.path
}

// Log appends an event to the history.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Timestamp = event.Timestamp.UTC()

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, entry, path string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Entry:     entry,
		Path:      path,
	})
}

// Events reads events in chronological order. A non-empty entry restricts
// the result to that entry.
func (l *Logger) Events(entry string) ([]Event, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		if entry != "" && event.Entry != entry {
			continue
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}
