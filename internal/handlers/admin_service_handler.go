package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/audit"
	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/panel"
)

type AdminServiceHandler struct {
	cfg   *config.Config
	store *panel.Store[models.Service]
	audit *audit.Dispatcher
}

func NewAdminServiceHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *AdminServiceHandler {
	return &AdminServiceHandler{
		cfg:   cfg,
		store: panel.NewStore(func(s models.Service) string { return s.ID }),
		audit: dispatcher,
	}
}

type ServiceRequest struct {
	ServiceName string  `json:"serviceName" binding:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice" binding:"required"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
}

func (h *AdminServiceHandler) List(c *gin.Context) {
	services, err := adminClient(c, h.cfg).AdminListServices(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(services)
	httpresp.List(c, services)
}

func (h *AdminServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Service name and base price are required.")
		return
	}

	created, err := adminClient(c, h.cfg).AdminCreateService(c.Request.Context(), &models.Service{
		ServiceName: req.ServiceName,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Duration:    req.Duration,
		Category:    req.Category,
		Status:      req.Status,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Prepend(*created)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

func (h *AdminServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Service name and base price are required.")
		return
	}

	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminUpdateService(c.Request.Context(), id, &models.Service{
		ID:          id,
		ServiceName: req.ServiceName,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Duration:    req.Duration,
		Category:    req.Category,
		Status:      req.Status,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

func (h *AdminServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := adminClient(c, h.cfg).AdminDeleteService(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Remove(id)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}
