package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mechhub/portal/internal/httperr"
)

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		status Status
		want   []Action
	}{
		{StatusPending, []Action{ActionAccept, ActionDecline}},
		{StatusConfirmed, []Action{ActionStart, ActionReassign}},
		{StatusInProgress, []Action{ActionComplete}},
		{StatusCompleted, []Action{ActionDelete}},
		{StatusCancelled, []Action{ActionDelete}},
		{Status("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableActions(tt.status))
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(StatusCompleted))
	assert.NoError(t, CanDelete(StatusCancelled))

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusInProgress} {
		err := CanDelete(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "expected invalid_state for %s", s)
	}
}

func TestPartActions(t *testing.T) {
	tests := []struct {
		status PartStatus
		want   []PartStatus
	}{
		{PartPending, []PartStatus{PartApproved, PartRejected}},
		{PartApproved, []PartStatus{PartDispatched}},
		{PartDispatched, []PartStatus{PartDelivered}},
		{PartDelivered, nil},
		{PartRejected, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, PartActions(tt.status))
		})
	}
}
