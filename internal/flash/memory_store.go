package flash

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	msg       Message
	expiresAt time.Time
}

// MemoryStore is a process-local Store used when no redis is configured.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Put(ctx context.Context, id string, msg Message) error {
	if id == "" {
		return ErrEmptyID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictExpired()
	m.entries[id] = memoryEntry{msg: msg, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Pop(ctx context.Context, id string) (Message, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return Message{}, false, nil
	}
	delete(m.entries, id)

	if !m.now().Before(entry.expiresAt) {
		return Message{}, false, nil
	}
	return entry.msg, true, nil
}

func (m *MemoryStore) evictExpired() {
	now := m.now()
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
}
