package otp

import (
	"sync"
	"time"

	"github.com/go-auth-profile/internal/domain"
)

// Registry stores live OTP entries keyed by email. At most one entry is
// live per email; Put overwrites. Implementations must be safe for
// concurrent issuance, verification and sweeping.
type Registry interface {
	Put(email string, e domain.OTPEntry)
	Get(email string) (domain.OTPEntry, bool)
	Delete(email string)
	DeleteExpired(now time.Time) int
}

// MemoryRegistry is the in-process Registry. Entries have no durability;
// loss on restart only interrupts in-flight sign-ins.
type MemoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]domain.OTPEntry
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{entries: make(map[string]domain.OTPEntry)}
}

func (r *MemoryRegistry) Put(email string, e domain.OTPEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[email] = e
}

func (r *MemoryRegistry) Get(email string) (domain.OTPEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[email]
	return e, ok
}

func (r *MemoryRegistry) Delete(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, email)
}

// DeleteExpired removes every entry whose ExpiresAt has passed and
// returns the number removed. Unexpired entries are untouched.
func (r *MemoryRegistry) DeleteExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for email, e := range r.entries {
		if now.After(e.ExpiresAt) {
			delete(r.entries, email)
			n++
		}
	}
	return n
}

// Len reports the number of live entries.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
