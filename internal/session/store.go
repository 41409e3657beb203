package session

import (
	"context"
	"errors"

	"github.com/mechhub/portal/internal/domain/booking"
)

// ErrNotFound is returned when a session key is absent or expired.
var ErrNotFound = errors.New("session: not found")

// Store holds the portal's ephemeral per-session state: wizard progress and
// registered device tokens. Everything is TTL-bound; nothing here is a
// durable record.
type Store interface {
	SaveWizard(ctx context.Context, id string, w *booking.Wizard) error
	LoadWizard(ctx context.Context, id string) (*booking.Wizard, error)
	DeleteWizard(ctx context.Context, id string) error

	SaveDeviceToken(ctx context.Context, userID, token string) error
	DeviceToken(ctx context.Context, userID string) (string, error)
	ClearDeviceToken(ctx context.Context, userID string) error
}
