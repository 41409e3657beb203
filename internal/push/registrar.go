package push

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mechhub/portal/internal/httperr"
)

// ======================================================
// CAPABILITIES
// ======================================================

// PermissionRequester is the browser notification-permission prompt.
type PermissionRequester interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// TokenSource mints a device token from the messaging provider using the
// application's VAPID key.
type TokenSource interface {
	DeviceToken(ctx context.Context, vapidKey string) (string, error)
}

// Forwarder posts the minted token to the backend. Satisfied by the
// upstream client.
type Forwarder interface {
	RegisterFCMToken(ctx context.Context, token, userID, userType string) error
}

// TokenStore caches the registered token per user. Satisfied by the session
// store.
type TokenStore interface {
	SaveDeviceToken(ctx context.Context, userID, token string) error
	DeviceToken(ctx context.Context, userID string) (string, error)
	ClearDeviceToken(ctx context.Context, userID string) error
}

// Message is the envelope of a foreground push message, surfaced as a toast.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

// ======================================================
// REGISTRAR
// ======================================================

// Registrar drives push registration with an explicit token lifecycle: the
// token is set on permission grant and cleared on logout — no module-level
// global.
type Registrar struct {
	perms    PermissionRequester
	source   TokenSource
	upstream Forwarder
	store    TokenStore
	vapidKey string
	log      *logrus.Entry
}

func NewRegistrar(
	perms PermissionRequester,
	source TokenSource,
	upstream Forwarder,
	store TokenStore,
	vapidKey string,
) *Registrar {
	return &Registrar{
		perms:    perms,
		source:   source,
		upstream: upstream,
		store:    store,
		vapidKey: vapidKey,
		log:      logrus.WithField("component", "push"),
	}
}

// Register requests permission, mints a device token and forwards it to the
// backend, caching it on success.
func (r *Registrar) Register(ctx context.Context, userID, userType string) (string, error) {
	granted, err := r.perms.RequestPermission(ctx)
	if err != nil {
		return "", err
	}
	if !granted {
		return "", httperr.ErrBusiness("permission_denied")
	}

	token, err := r.source.DeviceToken(ctx, r.vapidKey)
	if err != nil {
		r.log.WithError(err).Warn("device token minting failed")
		return "", err
	}

	if err := r.upstream.RegisterFCMToken(ctx, token, userID, userType); err != nil {
		return "", err
	}

	if err := r.store.SaveDeviceToken(ctx, userID, token); err != nil {
		return "", err
	}

	r.log.WithField("userType", userType).Info("push registration complete")
	return token, nil
}

// Logout clears the cached token, ending the registration lifecycle.
func (r *Registrar) Logout(ctx context.Context, userID string) error {
	return r.store.ClearDeviceToken(ctx, userID)
}

// Token returns the cached token, empty when none is registered.
func (r *Registrar) Token(ctx context.Context, userID string) string {
	token, err := r.store.DeviceToken(ctx, userID)
	if err != nil {
		return ""
	}
	return token
}
