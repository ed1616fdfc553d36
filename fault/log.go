package fault

import "github.com/coregx/patternkit/internal/keygen"

// Entry is one recorded failure.
type Entry struct {
	Key string
	Err error
}

// Log is an ordered, append-only record of failures. The zero value is an
// empty log ready to use.
//
// A Log belongs to a single regex operation and is not safe for concurrent
// use.
type Log struct {
	entries []Entry
}

// Write appends err and returns the key it was recorded under.
func (l *Log) Write(err error) string {
	key := keygen.Unique()
	l.entries = append(l.entries, Entry{Key: key, Err: err})
	return key
}

// Entries returns the recorded failures in the order they occurred.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Errors returns the recorded errors in the order they occurred.
func (l *Log) Errors() []error {
	out := make([]error, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Err
	}
	return out
}

// Get returns the failure recorded under key.
func (l *Log) Get(key string) (error, bool) {
	for _, e := range l.entries {
		if e.Key == key {
			return e.Err, true
		}
	}
	return nil, false
}

// Len returns the number of recorded failures.
func (l *Log) Len() int {
	return len(l.entries)
}

// IsEmpty reports whether no failure has been recorded.
func (l *Log) IsEmpty() bool {
	return len(l.entries) == 0
}

// Latest returns the most recent failure, or nil. When pop is true the
// failure is removed from the log.
func (l *Log) Latest(pop bool) error {
	if len(l.entries) == 0 {
		return nil
	}
	last := l.entries[len(l.entries)-1]
	if pop {
		l.entries = l.entries[:len(l.entries)-1]
	}
	return last.Err
}

// Clear discards every recorded failure.
func (l *Log) Clear() {
	l.entries = nil
}
