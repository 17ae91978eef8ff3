package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// EventLogger appends one JSON object per line to a local event file.
// An empty path yields a logger that discards everything.
type EventLogger struct {
	mu     sync.Mutex
	w      io.WriteCloser
	client string
}

func NewEventLogger(path, clientID string) (*EventLogger, error) {
	if path == "" {
		return &EventLogger{w: nopCloser{Writer: io.Discard}, client: clientID}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &EventLogger{w: f, client: clientID}, nil
}

func (l *EventLogger) Info(event string, fields map[string]any) {
	l.log("info", event, fields)
}

func (l *EventLogger) Error(event string, fields map[string]any) {
	l.log("error", event, fields)
}

func (l *EventLogger) log(level, event string, fields map[string]any) {
	if l == nil || l.w == nil {
		return
	}
	entry := map[string]any{
		"ts":     time.Now().UTC().Format(time.RFC3339Nano),
		"level":  level,
		"event":  event,
		"client": l.client,
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, _ := json.Marshal(entry)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

func (l *EventLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
