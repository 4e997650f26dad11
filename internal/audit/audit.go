package audit

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"apprunnerctl/internal/redact"
)

const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRefused  = "refused"
	OutcomeNotFound = "not_found"
)

type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Caller    string    `json:"caller,omitempty"`
	Account   string    `json:"account,omitempty"`
	Action    string    `json:"action"`
	Region    string    `json:"region"`
	Service   string    `json:"service"`
	ARN       string    `json:"arn,omitempty"`
	Outcome   string    `json:"outcome"`
	Error     string    `json:"error,omitempty"`
}

type Logger struct {
	out      io.Writer
	mu       sync.Mutex
	now      func() time.Time
	redactor *redact.Redactor
}

func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out, now: time.Now, redactor: redact.New()}
}

// OpenFile appends events to path, creating it if needed. An empty path
// discards events.
func OpenFile(path string) (*Logger, func() error, error) {
	if path == "" {
		return NewLogger(nil), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(f), f.Close, nil
}

func (l *Logger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if event.Timestamp.IsZero() {
		event.Timestamp = l.now().UTC()
	}
	event.Error = l.redactor.RedactString(event.Error)
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_, _ = l.out.Write(append(data, '\n'))
}
