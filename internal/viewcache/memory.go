package viewcache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore is the in-process view cache used when no redis is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	entry, ok := s.entries[path]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		s.Invalidate(path)
		return nil, false
	}
	return entry.payload, true
}

func (s *MemoryStore) Set(path string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.mu.Lock()
	s.entries[path] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()
}

func (s *MemoryStore) Invalidate(path string) {
	s.mu.Lock()
	delete(s.entries, path)
	s.mu.Unlock()
}
