package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/domain/booking"
	"github.com/mechhub/portal/internal/dto"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/session"
	"github.com/mechhub/portal/internal/timezone"
)

// Milliseconds the UI waits before routing away after a successful submit.
const redirectAfterMs = 1500

// ======================================================
// HANDLER
// ======================================================

type WizardHandler struct {
	cfg   *config.Config
	store session.Store
}

func NewWizardHandler(cfg *config.Config, store session.Store) *WizardHandler {
	return &WizardHandler{cfg: cfg, store: store}
}

// ======================================================
// REQUESTS
// ======================================================

type StartWizardRequest struct {
	MechanicID string `json:"mechanicId" binding:"required"`
}

type SelectCarRequest struct {
	CarID string `json:"carId" binding:"required"`
}

type AddCarRequest struct {
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
}

type ToggleServiceRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type DetailsRequest struct {
	Instructions string `json:"instructions"`
	Odometer     string `json:"odometer"`
}

type ScheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// LIFECYCLE
// ======================================================

// Start opens a wizard session against one mechanic. The mechanic is loaded
// up front so the flow fails fast on a bad id, and the user's cars come along
// for the first step.
func (h *WizardHandler) Start(c *gin.Context) {
	var req StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mechanic is required.")
		return
	}

	client := userClient(c, h.cfg)

	mechanic, err := client.MechanicByID(c.Request.Context(), req.MechanicID)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	cars, err := client.ListCars(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	w := booking.NewWizard(mechanic.ID)
	id := uuid.NewString()

	if err := h.store.SaveWizard(c.Request.Context(), id, w); err != nil {
		httperr.Internal(c, "session_error", httperr.GenericMessage)
		return
	}

	httpresp.Created(c, gin.H{
		"mechanic": mechanic,
		"cars":     cars,
		"state":    dto.WizardState(id, w),
	})
}

func (h *WizardHandler) State(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.WizardState(id, w))
}

// ======================================================
// STEP 1 — CAR
// ======================================================

func (h *WizardHandler) SelectCar(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	var req SelectCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Car is required.")
		return
	}

	w.SelectCar(req.CarID)
	h.save(c, id, w)
}

// AddCar is the wizard's one side effect outside its own state: the car is
// created upstream before the flow proceeds and is not undoable within it.
// The new car is selected immediately.
func (h *WizardHandler) AddCar(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	var req AddCarRequest
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

	w.SelectCar(created.ID)

	if err := h.store.SaveWizard(c.Request.Context(), id, w); err != nil {
		httperr.Internal(c, "session_error", httperr.GenericMessage)
		return
	}

	httpresp.Created(c, gin.H{
		"car":   created,
		"state": dto.WizardState(id, w),
	})
}

// ======================================================
// STEP 2 — SERVICES
// ======================================================

func (h *WizardHandler) ToggleService(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	var req ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Service is required.")
		return
	}

	w.ToggleService(booking.SelectedService{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
	})
	h.save(c, id, w)
}

// ======================================================
// STEP 3 — INSTRUCTIONS / ODOMETER
// ======================================================

func (h *WizardHandler) Details(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid details.")
		return
	}

	w.SetDetails(req.Instructions, req.Odometer)
	h.save(c, id, w)
}

// ======================================================
// STEP 4 — SCHEDULE
// ======================================================

func (h *WizardHandler) Schedule(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and time are required.")
		return
	}

	if err := w.SetSchedule(req.Date, req.Time); err != nil {
		httperr.BadRequest(c, "invalid_time_slot", "Pick a time from the schedule grid.")
		return
	}
	h.save(c, id, w)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *WizardHandler) Next(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	if err := w.Next(); err != nil {
		if httperr.IsBusiness(err, "invalid_step") {
			httperr.BadRequest(c, "invalid_step", "You are already at the confirmation step.")
			return
		}
		httperr.BadRequest(c, "step_incomplete", "Complete this step before continuing.")
		return
	}
	h.save(c, id, w)
}

func (h *WizardHandler) Back(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	w.Back()
	h.save(c, id, w)
}

// ======================================================
// SUBMIT
// ======================================================

// Submit builds the booking payload and fires the single creation call. On
// failure the wizard stays at the confirm step; on success the session is
// discarded and the UI routes away after a fixed delay.
func (h *WizardHandler) Submit(c *gin.Context) {
	id, w, ok := h.load(c)
	if !ok {
		return
	}

	loc := timezone.Location(h.cfg.Timezone)
	payload, err := w.BuildPayload(timezone.NowIn(h.cfg.Timezone), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_step", "Finish all steps before confirming.")
		return
	}

	created, err := userClient(c, h.cfg).CreateBooking(c.Request.Context(), payload)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	_ = h.store.DeleteWizard(c.Request.Context(), id)

	httpresp.Created(c, gin.H{
		"booking":         created,
		"redirectAfterMs": redirectAfterMs,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *WizardHandler) load(c *gin.Context) (string, *booking.Wizard, bool) {
	id := c.Param("id")

	w, err := h.store.LoadWizard(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "wizard_not_found", "This booking session has expired.")
		return "", nil, false
	}
	return id, w, true
}

func (h *WizardHandler) save(c *gin.Context, id string, w *booking.Wizard) {
	if err := h.store.SaveWizard(c.Request.Context(), id, w); err != nil {
		httperr.Internal(c, "session_error", httperr.GenericMessage)
		return
	}
	httpresp.OK(c, dto.WizardState(id, w))
}
