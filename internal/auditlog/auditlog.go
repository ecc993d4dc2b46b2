// Package auditlog records seal/unseal operations as newline-delimited JSON,
// one entry per call, in the spirit of the AuditEntry trail kept alongside
// key lifecycle events: every operation gets an id, a timestamp, an event
// type, and an outcome, with no sensitive material (payloads, passwords,
// derived keys) ever written to it.
package auditlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType names the operation an Entry records.
type EventType string

const (
	EventSeal   EventType = "SEAL"
	EventUnseal EventType = "UNSEAL"
)

// Outcome names whether an operation succeeded.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailure Outcome = "FAILURE"
)

// Entry is one line of the audit trail.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Event      EventType `json:"event"`
	Outcome    Outcome   `json:"outcome"`
	PasswordID string    `json:"password_id,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// Log appends entries to an underlying writer as they arrive. It is safe
// for concurrent use; writes are serialized under a mutex the same way the
// source's lifecycle tracking serializes access to one key's trail.
type Log struct {
	mu sync.Mutex
	w  io.Writer
}

// New wraps w as an audit log destination.
func New(w io.Writer) *Log {
	return &Log{w: w}
}

// Open opens (creating if necessary, appending otherwise) a log file at
// path and returns a Log writing to it. The caller owns the returned
// *os.File's lifetime via the Close method.
func Open(path string) (*Log, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("auditlog: opening %s: %w", path, err)
	}
	return New(f), f, nil
}

// Record appends one entry, stamping it with a fresh random id. now is
// passed in by the caller (rather than taken internally) so call sites
// that need deterministic output in tests can supply a fixed clock.
func (l *Log) Record(now time.Time, event EventType, outcome Outcome, passwordID string, errKind string, detail string) error {
	entry := Entry{
		ID:         uuid.NewString(),
		Timestamp:  now,
		Event:      event,
		Outcome:    outcome,
		PasswordID: passwordID,
		ErrorKind:  errKind,
		Detail:     detail,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("auditlog: marshaling entry: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(line); err != nil {
		return fmt.Errorf("auditlog: writing entry: %w", err)
	}
	return nil
}
