package tracking

import (
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerLocks serializes operations per customer while letting different customers
// proceed in parallel. Locks are created on demand and dropped once nobody holds or
// waits for them.
type CustomerLocks struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*customerLock
}

type customerLock struct {
	mu   sync.Mutex
	refs int
}

func NewCustomerLocks() *CustomerLocks {
	return &CustomerLocks{locks: make(map[kernel.UUID]*customerLock)}
}

// Lock blocks until the customer's lock is acquired and returns its release function.
//
//	unlock := locks.Lock(customerID)
//	defer unlock()
func (l *CustomerLocks) Lock(customerID kernel.UUID) func() {
	l.mu.Lock()
	cl, ok := l.locks[customerID]
	if !ok {
		cl = &customerLock{}
		l.locks[customerID] = cl
	}
	cl.refs++
	l.mu.Unlock()

	cl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			cl.mu.Unlock()

			l.mu.Lock()
			cl.refs--
			if cl.refs == 0 {
				delete(l.locks, customerID)
			}
			l.mu.Unlock()
		})
	}
}

// Size returns the number of customers currently holding or waiting on a lock.
func (l *CustomerLocks) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
