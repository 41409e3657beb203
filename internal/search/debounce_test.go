package search

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesRapidTriggers(t *testing.T) {
	var calls int32
	d := NewDebouncer(50*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_FiresPerSettledWindow(t *testing.T) {
	var calls int32
	d := NewDebouncer(20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDebouncer_Stop(t *testing.T) {
	var calls int32
	d := NewDebouncer(20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.Trigger()
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&calls))
}
