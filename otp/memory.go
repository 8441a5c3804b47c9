package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore keeps codes in a mutex-guarded map with TTL eviction.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Set(_ context.Context, userType string, userID uint, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[key(userType, userID)] = memoryEntry{
		entry:     entry,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userType string, userID uint) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.entries[key(userType, userID)]
	if !ok {
		return Entry{}, false, nil
	}
	if time.Now().After(stored.expiresAt) {
		delete(s.entries, key(userType, userID))
		return Entry{}, false, nil
	}
	return stored.entry, true, nil
}

func (s *MemoryStore) Consume(_ context.Context, userType string, userID uint, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(userType, userID)
	stored, ok := s.entries[k]
	if !ok {
		return false, nil
	}
	if time.Now().After(stored.expiresAt) {
		delete(s.entries, k)
		return false, nil
	}
	if stored.entry.Code != code {
		return false, nil
	}
	delete(s.entries, k)
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, userType string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key(userType, userID))
	return nil
}

// sweepLocked drops expired codes so the map does not grow unbounded.
func (s *MemoryStore) sweepLocked() {
	now := time.Now()
	for k, stored := range s.entries {
		if now.After(stored.expiresAt) {
			delete(s.entries, k)
		}
	}
}
