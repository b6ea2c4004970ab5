package allocation

import "sync"

// HouseholdLocks serializes allocation runs per household. Two concurrent
// runs for the same household would otherwise race on the read-compute-
// write cycle and the later writer would silently clobber the earlier one.
// Different households proceed independently.
type HouseholdLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewHouseholdLocks creates an empty lock table.
func NewHouseholdLocks() *HouseholdLocks {
	return &HouseholdLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for a household, creating it on first use, and
// returns the unlock function. Lock entries are never evicted; the table
// grows with the number of distinct households, which is small.
func (l *HouseholdLocks) Lock(householdID string) func() {
	l.mu.Lock()
	m, ok := l.locks[householdID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[householdID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
