// Package notify implements the warning sink: an append-only warning log, a
// globally rate-limited desktop notifier, and a recorder used in tests.
package notify

import (
	"sync"
	"time"
)

// Entry is one delivered warning.
type Entry struct {
	Time    time.Time
	Message string
}

// Log is an append-only, ordered record of delivered warnings. Safe for
// concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// Append records a warning.
func (l *Log) Append(t time.Time, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Time: t, Message: message})
}

// Entries returns a copy of all recorded warnings in delivery order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns just the message texts, in delivery order.
func (l *Log) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Message
	}
	return out
}

// Tail returns up to the n most recent entries.
func (l *Log) Tail(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Rest is a recorded rest-complete notice request.
type Rest struct {
	After time.Duration
	Label string
}

// Recorder is the testing-mode sink: it records warnings and scheduled rest
// notices without any delivery side effects or cooldown gating.
type Recorder struct {
	// Now supplies timestamps for recorded warnings. Defaults to time.Now.
	Now func() time.Time

	log   Log
	mu    sync.Mutex
	rests []Rest
}

// NewRecorder returns a recorder stamping entries with the given time source.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{Now: now}
}

// Warn records the message with a timestamp.
func (r *Recorder) Warn(message string) {
	r.log.Append(r.Now(), message)
}

// ScheduleRest records the request without scheduling anything.
func (r *Recorder) ScheduleRest(after time.Duration, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rests = append(r.rests, Rest{After: after, Label: label})
}

// Log exposes the append-only warning log.
func (r *Recorder) Log() *Log {
	return &r.log
}

// Rests returns all recorded rest-notice requests.
func (r *Recorder) Rests() []Rest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Rest, len(r.rests))
	copy(out, r.rests)
	return out
}
