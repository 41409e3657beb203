package booking

import "github.com/mechhub/portal/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionStart    Action = "start"
	ActionReassign Action = "reassign"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
)

// AvailableActions is the pure function gating which action menu entries a
// booking row offers. The server stays authoritative over transition
// legality; this only decides what is rendered.
func AvailableActions(s Status) []Action {
	switch s {
	case StatusPending:
		return []Action{ActionAccept, ActionDecline}
	case StatusConfirmed:
		return []Action{ActionStart, ActionReassign}
	case StatusInProgress:
		return []Action{ActionComplete}
	case StatusCompleted, StatusCancelled:
		return []Action{ActionDelete}
	default:
		return nil
	}
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanDelete: bookings are deleted only when completed or cancelled.
func CanDelete(current Status) error {
	if !IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
