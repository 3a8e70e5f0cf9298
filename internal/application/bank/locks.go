package bank

import "sync"

// AccountLocks is the process-wide advisory lock registry for fund
// movements: a set of currently busy account numbers behind one mutex.
//
// Acquisition is strictly non-blocking. An operation that cannot take its
// lock fails fast instead of queuing, which removes deadlock risk entirely;
// callers retry at a higher level if they care. Only callers that check the
// registry are protected.
type AccountLocks struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

// NewAccountLocks creates an empty lock registry
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{busy: make(map[string]struct{})}
}

// TryAcquire marks the account busy. Returns false without waiting when the
// account is already held.
func (l *AccountLocks) TryAcquire(accountNumber string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.busy[accountNumber]; held {
		return false
	}
	l.busy[accountNumber] = struct{}{}
	return true
}

// Release frees the account. Releasing an account that is not held is a
// no-op, so deferred releases are safe on every exit path.
func (l *AccountLocks) Release(accountNumber string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.busy, accountNumber)
}

// IsHeld reports whether the account is currently busy
func (l *AccountLocks) IsHeld(accountNumber string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, held := l.busy[accountNumber]
	return held
}
