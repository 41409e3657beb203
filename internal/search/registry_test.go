package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mechhub/portal/internal/models"
)

func TestRegistry_OneWatcherPerSession(t *testing.T) {
	finder := &fakeFinder{result: &models.FindResult{}}
	r := NewRegistry(finder, 10*time.Millisecond)

	a := r.Get("session-a")
	b := r.Get("session-b")
	assert.NotSame(t, a, b)

	// the same session keeps its watcher, and with it the last snapshot
	assert.Same(t, a, r.Get("session-a"))
}
