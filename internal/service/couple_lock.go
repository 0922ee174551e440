package service

import "sync"

// coupleLocker hands out one mutex per couple identifier so that the
// read-modify-write in CompleteActivity is serialized per couple. Two racing
// completions for the same couple would otherwise both load the same prior
// state and one update would be lost. Different couples never share a mutex
// and never contend.
type coupleLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCoupleLocker() *coupleLocker {
	return &coupleLocker{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for coupleID, creating it on first use. Locks are
// never removed; the per-couple footprint is one mutex.
func (l *coupleLocker) get(coupleID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[coupleID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[coupleID] = m
	}
	return m
}
