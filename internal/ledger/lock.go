package ledger

import (
	"sync"

	"github.com/google/uuid"
)

type itemLock struct {
	mu   sync.Mutex
	refs int
}

// ItemLocks is an in-process lock table granting exclusive ownership of
// the mutation path for a single item. Callers for different items never
// block each other; entries are dropped as soon as the last waiter is
// gone, so the table stays proportional to the number of items currently
// under mutation.
type ItemLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*itemLock
}

func NewItemLocks() *ItemLocks {
	return &ItemLocks{locks: make(map[uuid.UUID]*itemLock)}
}

// WithItemLock runs fn while holding the exclusive lock for itemID. The
// lock is released on every exit path, including a panic inside fn.
func (l *ItemLocks) WithItemLock(itemID uuid.UUID, fn func() error) error {
	entry := l.acquire(itemID)
	defer l.release(itemID, entry)
	return fn()
}

func (l *ItemLocks) acquire(itemID uuid.UUID) *itemLock {
	l.mu.Lock()
	entry, ok := l.locks[itemID]
	if !ok {
		entry = &itemLock{}
		l.locks[itemID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return entry
}

func (l *ItemLocks) release(itemID uuid.UUID, entry *itemLock) {
	entry.mu.Unlock()

	l.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, itemID)
	}
	l.mu.Unlock()
}
