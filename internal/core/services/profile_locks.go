package services

import "sync"

// ProfileLocks serializes the load, mutate and save sequence of each profile
// ledger. Locks are created on demand and dropped when no caller holds them.
type ProfileLocks struct {
	mu    sync.Mutex
	locks map[string]*profileLock
}

type profileLock struct {
	mu   sync.Mutex
	refs int
}

// NewProfileLocks creates an empty lock table.
func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{locks: make(map[string]*profileLock)}
}

// Lock blocks until the lock of profileID is held and returns its release func.
func (p *ProfileLocks) Lock(profileID string) (unlock func()) {
	p.mu.Lock()
	l, ok := p.locks[profileID]
	if !ok {
		l = &profileLock{}
		p.locks[profileID] = l
	}
	l.refs++
	p.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		p.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, profileID)
		}
		p.mu.Unlock()
	}
}

func (p *ProfileLocks) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.locks)
}
