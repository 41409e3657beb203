package search

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechhub/portal/internal/geo"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/models"
)

type fakeFinder struct {
	mu      sync.Mutex
	calls   int
	queries []url.Values
	result  *models.FindResult
	err     error
}

func (f *fakeFinder) FindMechanics(_ context.Context, query url.Values) (*models.FindResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

func (f *fakeFinder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached within a second")
}

func TestWatcher_DebouncedRefetch(t *testing.T) {
	finder := &fakeFinder{result: &models.FindResult{Total: 3}}
	w := NewWatcher(finder, 30*time.Millisecond)
	defer w.Stop()

	// three filter changes inside the window collapse into one request
	w.Update(Filters{Search: "b"})
	w.Update(Filters{Search: "br"})
	w.Update(Filters{Search: "brake"})

	waitFor(t, func() bool { return !w.Snapshot().Pending })
	assert.Equal(t, 1, finder.callCount())

	snap := w.Snapshot()
	require.NotNil(t, snap.Result)
	assert.Equal(t, 3, snap.Result.Total)
	assert.Equal(t, "brake", snap.Filters.Search)

	// the request carried the settled filter state
	finder.mu.Lock()
	assert.Equal(t, "brake", finder.queries[0].Get("search"))
	finder.mu.Unlock()
}

func TestWatcher_ErrorKeepsPriorResult(t *testing.T) {
	finder := &fakeFinder{result: &models.FindResult{Total: 5}}
	w := NewWatcher(finder, 10*time.Millisecond)
	defer w.Stop()

	w.Update(Filters{City: "Mumbai"})
	waitFor(t, func() bool { return !w.Snapshot().Pending })
	require.NotNil(t, w.Snapshot().Result)

	finder.mu.Lock()
	finder.err = httperr.ErrUpstream(500, "internal_error", "")
	finder.mu.Unlock()

	w.Update(Filters{City: "Pune"})
	waitFor(t, func() bool { return !w.Snapshot().Pending })

	snap := w.Snapshot()
	require.NotNil(t, snap.Result)
	assert.Equal(t, 5, snap.Result.Total)
	assert.NotEmpty(t, snap.Error)
}

func TestWatcher_AnnotatesDistance(t *testing.T) {
	finder := &fakeFinder{result: &models.FindResult{
		Mechanics: []models.Mechanic{
			{ID: "m1", Location: models.MechanicLocation{Lat: 18.5204, Lng: 73.8567}},
		},
	}}
	w := NewWatcher(finder, 10*time.Millisecond)
	defer w.Stop()

	w.Update(Filters{User: &geo.Coord{Lat: 19.0760, Lng: 72.8777}})
	waitFor(t, func() bool { return !w.Snapshot().Pending })

	snap := w.Snapshot()
	require.NotNil(t, snap.Result)
	require.Len(t, snap.Result.Mechanics, 1)
	require.NotNil(t, snap.Result.Mechanics[0].Distance)
	assert.Greater(t, *snap.Result.Mechanics[0].Distance, 0.0)
}
