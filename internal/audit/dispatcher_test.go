package audit

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_LogsEvent(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	d := NewDispatcher()
	d.Dispatch(Event{
		Actor:    "admin-1",
		Action:   "update_status",
		Entity:   "booking",
		EntityID: "bk-1",
		Metadata: map[string]any{"status": "confirmed"},
	})

	require.Eventually(t, func() bool {
		return len(hook.AllEntries()) > 0
	}, time.Second, 10*time.Millisecond)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "admin-1", entry.Data["actor"])
	assert.Equal(t, "update_status", entry.Data["action"])
	assert.Equal(t, "booking", entry.Data["entity"])
	assert.Equal(t, "bk-1", entry.Data["entity_id"])
	assert.Equal(t, "confirmed", entry.Data["status"])
}

func TestDispatcher_NeverBlocks(t *testing.T) {
	d := NewDispatcher()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			d.Dispatch(Event{Actor: "a", Action: "x", Entity: "booking"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full queue")
	}
}
