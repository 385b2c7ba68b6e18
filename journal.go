package redox

import (
	"sync"
	"time"
)

// DispatchRecord is one entry in a store's journal.
type DispatchRecord struct {
	// Action is the dispatched action.
	Action Action

	// Err is the middleware failure that aborted the dispatch, nil for
	// committed dispatches.
	Err error

	// At is when the dispatch began, per the store's clock.
	At time.Time

	// Duration covers the full middleware pipeline including the reducer.
	Duration time.Duration
}

// journal is a thread-safe ring buffer of recent dispatch records.
type journal struct {
	mu      sync.RWMutex
	records []DispatchRecord
	size    int
	head    int
	count   int
}

// newJournal creates a journal with the given capacity.
// If size is 0, the journal is disabled.
func newJournal(size int) *journal {
	if size <= 0 {
		return nil
	}
	return &journal{
		records: make([]DispatchRecord, size),
		size:    size,
	}
}

// push adds a record, evicting the oldest when full.
func (j *journal) push(rec DispatchRecord) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	j.records[j.head] = rec
	j.head = (j.head + 1) % j.size
	if j.count < j.size {
		j.count++
	}
}

// all returns the retained records, oldest first.
func (j *journal) all() []DispatchRecord {
	if j == nil {
		return nil
	}
	j.mu.RLock()
	defer j.mu.RUnlock()

	if j.count == 0 {
		return nil
	}

	result := make([]DispatchRecord, j.count)
	start := (j.head - j.count + j.size) % j.size
	for i := 0; i < j.count; i++ {
		result[i] = j.records[(start+i)%j.size]
	}
	return result
}
