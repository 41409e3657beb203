package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httpresp"
)

type AdminAnalyticsHandler struct {
	cfg *config.Config
}

func NewAdminAnalyticsHandler(cfg *config.Config) *AdminAnalyticsHandler {
	return &AdminAnalyticsHandler{cfg: cfg}
}

func (h *AdminAnalyticsHandler) Dashboard(c *gin.Context) {
	analytics, err := adminClient(c, h.cfg).AdminDashboardAnalytics(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	httpresp.OK(c, analytics)
}
