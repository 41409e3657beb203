package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/middleware"
	"github.com/mechhub/portal/internal/push"
	"github.com/mechhub/portal/internal/session"
)

// ======================================================
// HANDLER
// ======================================================

// PushHandler bridges the browser's messaging capabilities to the push
// registrar: the device reports the permission outcome and the token it
// minted with the VAPID key, and the registrar forwards and caches it.
type PushHandler struct {
	cfg   *config.Config
	store session.Store
}

func NewPushHandler(cfg *config.Config, store session.Store) *PushHandler {
	return &PushHandler{cfg: cfg, store: store}
}

type RegisterPushRequest struct {
	PermissionGranted bool   `json:"permissionGranted"`
	FCMToken          string `json:"fcmToken"`
}

// -------- capability adapters over the device report --------

type reportedGrant struct{ granted bool }

func (r reportedGrant) RequestPermission(_ context.Context) (bool, error) {
	return r.granted, nil
}

type mintedToken struct{ token string }

func (m mintedToken) DeviceToken(_ context.Context, _ string) (string, error) {
	if m.token == "" {
		return "", httperr.ErrBusiness("no_device_token")
	}
	return m.token, nil
}

// ======================================================
// ROUTES
// ======================================================

func (h *PushHandler) VAPIDKey(c *gin.Context) {
	httpresp.OK(c, gin.H{"vapidPublicKey": h.cfg.VAPIDPublicKey})
}

func (h *PushHandler) Register(c *gin.Context) {
	var req RegisterPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid push registration.")
		return
	}

	userType, _ := c.MustGet(middleware.ContextUserType).(string)

	registrar := push.NewRegistrar(
		reportedGrant{granted: req.PermissionGranted},
		mintedToken{token: req.FCMToken},
		userClient(c, h.cfg),
		h.store,
		h.cfg.VAPIDPublicKey,
	)

	token, err := registrar.Register(c.Request.Context(), actor(c), userType)
	if err != nil {
		if httperr.IsBusiness(err, "permission_denied") {
			httperr.BadRequest(c, "permission_denied", "Notification permission was not granted.")
			return
		}
		if httperr.IsBusiness(err, "no_device_token") {
			httperr.BadRequest(c, "no_device_token", "No device token was provided.")
			return
		}
		writeUpstream(c, err)
		return
	}

	httpresp.OK(c, gin.H{"registered": true, "fcmToken": token})
}

// Logout ends the token lifecycle for this user.
func (h *PushHandler) Logout(c *gin.Context) {
	registrar := push.NewRegistrar(nil, nil, nil, h.store, h.cfg.VAPIDPublicKey)

	if err := registrar.Logout(c.Request.Context(), actor(c)); err != nil {
		httperr.Internal(c, "session_error", httperr.GenericMessage)
		return
	}

	httpresp.OK(c, gin.H{"registered": false})
}
