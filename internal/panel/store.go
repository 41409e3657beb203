package panel

import "sync"

// Store holds one dashboard panel's collection between full refetches. The
// contract is confirm-then-apply: a mutation calls the server first and only
// the server-returned record is spliced in afterwards — no pre-confirmation
// optimism, and a failed call leaves the collection untouched.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
}

func NewStore[T any](key func(T) string) *Store[T] {
	return &Store[T]{key: key}
}

// Replace swaps in the full collection, as fetched on panel mount.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.key(item) == key {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Splice replaces exactly the record with the same key; every other element
// stays untouched. Returns false when no record matched.
func (s *Store[T]) Splice(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.key(item)
	for i := range s.items {
		if s.key(s.items[i]) == key {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Prepend inserts a freshly created record at the head of the collection.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{item}, s.items...)
}

func (s *Store[T]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.key(s.items[i]) == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
