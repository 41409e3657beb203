package search

import (
	"sync"
	"time"
)

const watcherIdleTTL = 15 * time.Minute

// Registry hands out one watcher per browsing session and sweeps watchers
// that have gone idle.
type Registry struct {
	mu       sync.Mutex
	watchers map[string]*Watcher
	finder   Finder
	delay    time.Duration
}

func NewRegistry(finder Finder, delay time.Duration) *Registry {
	r := &Registry{
		watchers: make(map[string]*Watcher),
		finder:   finder,
		delay:    delay,
	}

	go r.sweep()
	return r
}

func (r *Registry) Get(sessionID string) *Watcher {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.watchers[sessionID]; ok {
		return w
	}

	w := NewWatcher(r.finder, r.delay)
	r.watchers[sessionID] = w
	return w
}

func (r *Registry) sweep() {
	for range time.Tick(time.Minute) {
		cutoff := time.Now().Add(-watcherIdleTTL)

		r.mu.Lock()
		for id, w := range r.watchers {
			if w.LastSeen().Before(cutoff) {
				w.Stop()
				delete(r.watchers, id)
			}
		}
		r.mu.Unlock()
	}
}
