package session

import (
	"context"
	"sync"
	"time"

	"github.com/mechhub/portal/internal/domain/booking"
)

type memoryEntry struct {
	wizard  booking.Wizard
	expires time.Time
}

// MemoryStore is the single-process fallback used when no Redis address is
// configured, and the store used by tests.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	wizards map[string]memoryEntry
	tokens  map[string]string
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		wizards: make(map[string]memoryEntry),
		tokens:  make(map[string]string),
	}
}

func (s *MemoryStore) SaveWizard(_ context.Context, id string, w *booking.Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[id] = memoryEntry{wizard: *w, expires: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) LoadWizard(_ context.Context, id string) (*booking.Wizard, error) {
	s.mu.RLock()
	entry, ok := s.wizards[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return nil, ErrNotFound
	}

	w := entry.wizard
	return &w, nil
}

func (s *MemoryStore) DeleteWizard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, id)
	return nil
}

func (s *MemoryStore) SaveDeviceToken(_ context.Context, userID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = token
	return nil
}

func (s *MemoryStore) DeviceToken(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[userID]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *MemoryStore) ClearDeviceToken(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
