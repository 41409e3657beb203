package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/panel"
)

// ======================================================
// HANDLER
// ======================================================

// ProfileHandler serves the customer profile screens: the car garage CRUD
// and the service history. Each user gets their own panel store; the store
// is source of truth between full refetches.
type ProfileHandler struct {
	cfg *config.Config

	mu   sync.Mutex
	cars map[string]*panel.Store[models.Car]
}

func NewProfileHandler(cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		cfg:  cfg,
		cars: make(map[string]*panel.Store[models.Car]),
	}
}

func (h *ProfileHandler) carStore(userID string) *panel.Store[models.Car] {
	h.mu.Lock()
	defer h.mu.Unlock()

	store, ok := h.cars[userID]
	if !ok {
		store = panel.NewStore(func(c models.Car) string { return c.ID })
		h.cars[userID] = store
	}
	return store
}

// ======================================================
// CARS
// ======================================================

type CarRequest struct {
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
}

func (h *ProfileHandler) ListCars(c *gin.Context) {
	cars, err := userClient(c, h.cfg).ListCars(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.carStore(actor(c)).Replace(cars)
	httpresp.List(c, cars)
}

func (h *ProfileHandler) CreateCar(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All car fields are required.")
		return
	}

	created, err := userClient(c, h.cfg).CreateCar(c.Request.Context(), &models.Car{
		Name:         req.Name,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.carStore(actor(c)).Prepend(*created)
	httpresp.Created(c, created)
}

func (h *ProfileHandler) UpdateCar(c *gin.Context) {
	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All car fields are required.")
		return
	}

	id := c.Param("id")

	updated, err := userClient(c, h.cfg).UpdateCar(c.Request.Context(), id, &models.Car{
		ID:           id,
		Name:         req.Name,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.carStore(actor(c)).Splice(*updated)
	httpresp.OK(c, updated)
}

func (h *ProfileHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")

	if err := userClient(c, h.cfg).DeleteCar(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.carStore(actor(c)).Remove(id)
	httpresp.OK(c, gin.H{"deleted": id})
}

// ======================================================
// SERVICE HISTORY
// ======================================================

func (h *ProfileHandler) History(c *gin.Context) {
	history, err := userClient(c, h.cfg).ServiceHistory(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	httpresp.List(c, history)
}
