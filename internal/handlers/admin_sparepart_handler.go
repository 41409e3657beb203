package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/audit"
	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/domain/booking"
	"github.com/mechhub/portal/internal/dto"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/panel"
)

type AdminSparePartHandler struct {
	cfg   *config.Config
	store *panel.Store[models.SparePartRequest]
	audit *audit.Dispatcher
}

func NewAdminSparePartHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *AdminSparePartHandler {
	return &AdminSparePartHandler{
		cfg:   cfg,
		store: panel.NewStore(func(p models.SparePartRequest) string { return p.RequestID }),
		audit: dispatcher,
	}
}

func (h *AdminSparePartHandler) List(c *gin.Context) {
	parts, err := adminClient(c, h.cfg).AdminListSpareParts(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(parts)
	httpresp.List(c, dto.SparePartRows(parts))
}

// UpdateStatus only allows the forward transitions the current status
// offers; the chain never moves backwards.
func (h *AdminSparePartHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	id := c.Param("id")

	if current, ok := h.store.Get(id); ok {
		allowed := false
		for _, next := range booking.PartActions(booking.PartStatus(current.Status)) {
			if string(next) == req.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			httperr.BadRequest(c, "invalid_transition", "That status change is not available for this request.")
			return
		}
	}

	updated, err := adminClient(c, h.cfg).AdminUpdateSparePartStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "spare_part_status_changed",
		Entity:   "spare_part_request",
		EntityID: id,
		Metadata: map[string]any{"status": req.Status},
	})

	httpresp.OK(c, dto.SparePartRow(*updated))
}
