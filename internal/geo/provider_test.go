package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	coord Coord
	err   error
	delay time.Duration
}

func (s *stubProvider) Current(ctx context.Context) (Coord, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Coord{}, ctx.Err()
		}
	}
	return s.coord, s.err
}

var testFallback = Coord{Lat: 19.0760, Lng: 72.8777}

func TestAcquire_Success(t *testing.T) {
	want := Coord{Lat: 12.9716, Lng: 77.5946}
	a := NewAcquirer(&stubProvider{coord: want}, testFallback, time.Second)

	fix := a.Acquire(context.Background())

	assert.Equal(t, want, fix.Coord)
	assert.False(t, fix.UsedFallback)
	assert.Empty(t, fix.Advisory)
}

func TestAcquire_NilProvider(t *testing.T) {
	a := NewAcquirer(nil, testFallback, time.Second)

	fix := a.Acquire(context.Background())

	assert.Equal(t, testFallback, fix.Coord)
	assert.True(t, fix.UsedFallback)
	assert.Equal(t, Advisory(ReasonUnsupported), fix.Advisory)
}

func TestAcquire_FailureReasons(t *testing.T) {
	for _, reason := range []FailureReason{ReasonPermissionDenied, ReasonUnavailable} {
		t.Run(string(reason), func(t *testing.T) {
			a := NewAcquirer(&stubProvider{err: &LocationError{Reason: reason}}, testFallback, time.Second)

			fix := a.Acquire(context.Background())

			assert.Equal(t, testFallback, fix.Coord)
			assert.True(t, fix.UsedFallback)
			assert.Equal(t, Advisory(reason), fix.Advisory)
		})
	}
}

func TestAcquire_UnknownErrorReadsAsUnavailable(t *testing.T) {
	a := NewAcquirer(&stubProvider{err: errors.New("gps glitch")}, testFallback, time.Second)

	fix := a.Acquire(context.Background())

	assert.True(t, fix.UsedFallback)
	assert.Equal(t, Advisory(ReasonUnavailable), fix.Advisory)
}

func TestAcquire_Timeout(t *testing.T) {
	a := NewAcquirer(&stubProvider{delay: 200 * time.Millisecond}, testFallback, 20*time.Millisecond)

	fix := a.Acquire(context.Background())

	assert.True(t, fix.UsedFallback)
	assert.Equal(t, Advisory(ReasonTimeout), fix.Advisory)
}

// A retry is a fresh acquisition: a provider that recovers is believed.
func TestAcquire_RetryAfterFailure(t *testing.T) {
	p := &stubProvider{err: &LocationError{Reason: ReasonPermissionDenied}}
	a := NewAcquirer(p, testFallback, time.Second)

	first := a.Acquire(context.Background())
	assert.True(t, first.UsedFallback)

	p.err = nil
	p.coord = Coord{Lat: 13.0827, Lng: 80.2707}
	second := a.Acquire(context.Background())
	assert.False(t, second.UsedFallback)
	assert.Equal(t, p.coord, second.Coord)
}
