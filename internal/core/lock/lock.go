// Package lock provides a process-wide advisory lock table keyed by resource
// id. Acquisition is non-blocking: callers that fail to acquire must treat the
// resource as busy and give up rather than wait.
//
// The locks are advisory. They only serialize code paths that explicitly
// check them (the purchase transaction); nothing stops unrelated code from
// touching the underlying tables.
package lock

import "sync"

// Table is the set of currently-held resource keys. Membership only: there is
// no owner tracking and no queueing.
type Table struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewTable() *Table {
	return &Table{held: make(map[string]struct{})}
}

// TryAcquire marks key as held and returns true, unless the key is already
// held, in which case it returns false immediately. It never blocks.
func (t *Table) TryAcquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.held[key]; busy {
		return false
	}
	t.held[key] = struct{}{}
	return true
}

// Release frees key. Releasing a key that is not held is a no-op, so Release
// is safe to defer on every exit path.
func (t *Table) Release(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.held, key)
}

// Held reports whether key is currently held. Intended for tests and
// introspection; production code should rely on TryAcquire alone.
func (t *Table) Held(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.held[key]
	return busy
}
