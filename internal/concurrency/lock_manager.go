package concurrency

import (
	"sync"
)

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. An entry lives only while some
// caller holds or waits on it, so keys may be derived from request input.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

func (lm *LockManager) acquireRef(key string) *keyedLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) releaseRef(key string, l *keyedLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}

// Lock blocks until the key's mutex is held. The returned func releases it.
func (lm *LockManager) Lock(key string) (unlock func()) {
	l := lm.acquireRef(key)
	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		lm.releaseRef(key, l)
	}
}

// TryLock acquires the key's mutex without blocking. The returned func releases it.
func (lm *LockManager) TryLock(key string) (unlock func(), ok bool) {
	l := lm.acquireRef(key)
	if !l.mu.TryLock() {
		lm.releaseRef(key, l)
		return nil, false
	}
	return func() {
		l.mu.Unlock()
		lm.releaseRef(key, l)
	}, true
}

// Len reports how many keys currently have an entry
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
