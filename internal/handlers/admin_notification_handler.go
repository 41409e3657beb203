package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/panel"
)

type AdminNotificationHandler struct {
	cfg   *config.Config
	store *panel.Store[models.Notification]
}

func NewAdminNotificationHandler(cfg *config.Config) *AdminNotificationHandler {
	return &AdminNotificationHandler{
		cfg:   cfg,
		store: panel.NewStore(func(n models.Notification) string { return n.ID }),
	}
}

func (h *AdminNotificationHandler) List(c *gin.Context) {
	notifications, err := adminClient(c, h.cfg).AdminListNotifications(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(notifications)
	httpresp.List(c, notifications)
}

func (h *AdminNotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminMarkNotificationRead(c.Request.Context(), id)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)
	httpresp.OK(c, updated)
}

func (h *AdminNotificationHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := adminClient(c, h.cfg).AdminDeleteNotification(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Remove(id)
	httpresp.OK(c, gin.H{"deleted": id})
}
