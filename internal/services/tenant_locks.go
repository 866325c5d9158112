package services

import "sync"

// tenantLocks serializes commits per tenant. Tenants are independent units
// of concurrency, so there is one mutex per tenant id and no coordination
// across tenants. Mutexes are kept for the lifetime of the process; the
// tenant population is bounded by the number of registered companies.
type tenantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newTenantLocks() *tenantLocks {
	return &tenantLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex of a tenant and returns its release function.
func (t *tenantLocks) lock(tenantID string) func() {
	t.mu.Lock()
	m, exists := t.locks[tenantID]
	if !exists {
		m = &sync.Mutex{}
		t.locks[tenantID] = m
	}
	t.mu.Unlock()

	m.Lock()
	return m.Unlock
}
