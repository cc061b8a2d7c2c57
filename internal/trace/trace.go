// Package trace provides lightweight in-process timing instrumentation for
// the core expansion path. It never influences control flow; it only
// records how long named operations took.
package trace

import (
	"sync"
	"time"
)

// Entry is a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under name. Call as
// defer trace.Track(time.Now(), "Expand").
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears the buffer.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}
