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

type AdminMechanicHandler struct {
	cfg   *config.Config
	store *panel.Store[models.Mechanic]
	audit *audit.Dispatcher
}

func NewAdminMechanicHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *AdminMechanicHandler {
	return &AdminMechanicHandler{
		cfg:   cfg,
		store: panel.NewStore(func(m models.Mechanic) string { return m.ID }),
		audit: dispatcher,
	}
}

type MechanicRequest struct {
	Name     string                  `json:"name" binding:"required"`
	Phone    string                  `json:"phone"`
	Email    string                  `json:"email"`
	Location models.MechanicLocation `json:"location"`
	Services []string                `json:"services"`
	IsActive bool                    `json:"isActive"`
}

func (h *AdminMechanicHandler) List(c *gin.Context) {
	mechanics, err := adminClient(c, h.cfg).AdminListMechanics(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(mechanics)
	httpresp.List(c, mechanics)
}

func (h *AdminMechanicHandler) Create(c *gin.Context) {
	var req MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mechanic name is required.")
		return
	}

	created, err := adminClient(c, h.cfg).AdminCreateMechanic(c.Request.Context(), &models.Mechanic{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Location: req.Location,
		Services: req.Services,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Prepend(*created)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "mechanic_created",
		Entity:   "mechanic",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

func (h *AdminMechanicHandler) Update(c *gin.Context) {
	var req MechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mechanic name is required.")
		return
	}

	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminUpdateMechanic(c.Request.Context(), id, &models.Mechanic{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Location: req.Location,
		Services: req.Services,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "mechanic_updated",
		Entity:   "mechanic",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

func (h *AdminMechanicHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := adminClient(c, h.cfg).AdminDeleteMechanic(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Remove(id)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "mechanic_deleted",
		Entity:   "mechanic",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}
