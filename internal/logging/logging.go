package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "tabdeck.log"

type sink struct {
	mu      sync.Mutex
	path    string
	session string
	trace   bool
}

var out = &sink{path: defaultLogFile}

func (s *sink) snapshot() (path, session string, trace bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.session, s.trace
}

// write opens the log for appending and hands it to fn. Failures are
// reported on stderr under label.
func write(path, label string, fn func(io.Writer) error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", label, err)
		return
	}
	defer f.Close()
	if err := fn(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", label, err)
	}
}

// Error appends err to the log file, prefixed with the session id when one
// is set.
func Error(err error) {
	if err == nil {
		return
	}
	path, session, _ := out.snapshot()
	write(path, "logging", func(w io.Writer) error {
		prefix := ""
		if session != "" {
			prefix = "[" + session + "] "
		}
		return log.New(w, prefix, log.LstdFlags).Output(2, err.Error())
	})
}

type entry struct {
	Time    time.Time   `json:"time"`
	Session string      `json:"session,omitempty"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line for event. It does nothing unless tracing has
// been enabled.
func Trace(event string, payload interface{}) {
	path, session, enabled := out.snapshot()
	if !enabled {
		return
	}
	e := entry{Time: time.Now().UTC(), Session: session, Event: event, Payload: payload}
	write(path, "trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(e)
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	out.mu.Lock()
	out.trace = enabled
	out.mu.Unlock()
}

func TraceEnabled() bool {
	_, _, enabled := out.snapshot()
	return enabled
}

// SetSession tags later entries with id.
func SetSession(id string) {
	out.mu.Lock()
	out.session = id
	out.mu.Unlock()
}

// Configure sets the log destination, creating its directory. A blank path
// or an uncreatable directory selects the default file.
func Configure(path string) {
	path = strings.TrimSpace(path)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = ""
		}
	}
	if path == "" {
		path = defaultLogFile
	}
	out.mu.Lock()
	out.path = path
	out.mu.Unlock()
}

func Path() string {
	path, _, _ := out.snapshot()
	return path
}
