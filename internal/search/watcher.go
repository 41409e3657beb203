package search

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/mechhub/portal/internal/geo"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/models"
)

// Finder is the slice of the upstream client the watcher needs.
type Finder interface {
	FindMechanics(ctx context.Context, query url.Values) (*models.FindResult, error)
}

// Snapshot is the current listing state: the last full result replacement,
// whether a debounced refetch is still pending, and the last error surfaced
// as toast text. A failed refetch leaves the prior result untouched.
type Snapshot struct {
	Filters   Filters            `json:"filters"`
	Result    *models.FindResult `json:"result,omitempty"`
	Pending   bool               `json:"pending"`
	Error     string             `json:"error,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Watcher re-queries the public search endpoint whenever the filter set
// changes, debounced so rapid changes within the window produce at most one
// request per settled state.
type Watcher struct {
	mu       sync.RWMutex
	finder   Finder
	debounce *Debouncer

	filters  Filters
	snapshot Snapshot
	lastSeen time.Time
}

func NewWatcher(finder Finder, delay time.Duration) *Watcher {
	w := &Watcher{
		finder:   finder,
		lastSeen: time.Now(),
	}
	w.debounce = NewDebouncer(delay, w.refetch)
	return w
}

// Update replaces the filter set and schedules a debounced refetch.
func (w *Watcher) Update(f Filters) {
	w.mu.Lock()
	w.filters = f
	w.snapshot.Filters = f
	w.snapshot.Pending = true
	w.lastSeen = time.Now()
	w.mu.Unlock()

	w.debounce.Trigger()
}

func (w *Watcher) refetch() {
	w.mu.RLock()
	filters := w.filters
	w.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := w.finder.FindMechanics(ctx, filters.Values())

	w.mu.Lock()
	defer w.mu.Unlock()

	w.snapshot.Pending = false
	w.snapshot.UpdatedAt = time.Now()

	if err != nil {
		w.snapshot.Error = httperr.UserMessage(err)
		return
	}

	if filters.User != nil {
		for i := range result.Mechanics {
			d := geo.Distance(*filters.User, geo.Coord{
				Lat: result.Mechanics[i].Location.Lat,
				Lng: result.Mechanics[i].Location.Lng,
			})
			result.Mechanics[i].Distance = &d
		}
	}

	w.snapshot.Error = ""
	w.snapshot.Result = result
}

func (w *Watcher) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshot
}

func (w *Watcher) LastSeen() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastSeen
}

func (w *Watcher) Stop() {
	w.debounce.Stop()
}
