package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// DefaultCapacity is the number of entries the global log retains.
const DefaultCapacity = 1024

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It retains only the most recent entries, up to its capacity.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	capacity int
	log      []LogEntry
}

// NewMemoryLogReaderWriter returns a log retaining at most capacity entries.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log, dropping the oldest entry if the log
// is full.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	if len(w.log) == w.capacity {
		copy(w.log, w.log[1:])
		w.log[len(w.log)-1] = entry
	} else {
		w.log = append(w.log, entry)
	}
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}
