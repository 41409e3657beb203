package handlers

import (
	"time"

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

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	cfg   *config.Config
	store *panel.Store[models.Booking]
	audit *audit.Dispatcher
}

func NewAdminBookingHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *AdminBookingHandler {
	return &AdminBookingHandler{
		cfg:   cfg,
		store: panel.NewStore(func(b models.Booking) string { return b.ID }),
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	VehicleMake   string  `json:"vehicleMake"`
	VehicleModel  string  `json:"vehicleModel"`
	VehicleYear   int     `json:"vehicleYear"`
	LicensePlate  string  `json:"licensePlate"`
	ServiceType   string  `json:"serviceType"`
	DateTime      string  `json:"dateTime"`
	Amount        float64 `json:"amount"`
	MechanicID    string  `json:"mechanicId"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReassignRequest struct {
	MechanicID string `json:"mechanicId" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	bookings, err := adminClient(c, h.cfg).AdminListBookings(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(bookings)
	httpresp.List(c, dto.BookingRows(bookings))
}

// ======================================================
// CREATE
// ======================================================

// Create validates the required fields before any network call is made — a
// missing field aborts with a toast, the upstream never sees the request.
func (h *AdminBookingHandler) Create(c *gin.Context) {
	var req AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking form.")
		return
	}

	if req.CustomerName == "" || req.CustomerPhone == "" || req.ServiceType == "" || req.DateTime == "" {
		httperr.BadRequest(c, "missing_required_fields", "Customer name, phone, service type and date are required.")
		return
	}

	when, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid booking date.")
		return
	}

	created, err := adminClient(c, h.cfg).AdminCreateBooking(c.Request.Context(), &models.Booking{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		VehicleMake:   req.VehicleMake,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		LicensePlate:  req.LicensePlate,
		ServiceType:   req.ServiceType,
		DateTime:      when,
		Amount:        req.Amount,
		MechanicID:    req.MechanicID,
		Status:        string(booking.StatusPending),
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Prepend(*created)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: created.ID,
	})

	httpresp.Created(c, dto.BookingRow(*created))
}

// ======================================================
// STATUS / REASSIGN
// ======================================================

// UpdateStatus splices the server-returned record over the one row; every
// other row stays referentially untouched.
func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminUpdateBookingStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"status": req.Status},
	})

	httpresp.OK(c, dto.BookingRow(*updated))
}

func (h *AdminBookingHandler) Reassign(c *gin.Context) {
	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mechanic is required.")
		return
	}

	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminReassignBooking(c.Request.Context(), id, req.MechanicID)
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "booking_reassigned",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]any{"mechanicId": req.MechanicID},
	})

	httpresp.OK(c, dto.BookingRow(*updated))
}

// ======================================================
// DELETE
// ======================================================

// Delete is only offered for terminal bookings; the same rule is enforced
// here before the call goes out.
func (h *AdminBookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if current, ok := h.store.Get(id); ok {
		if err := booking.CanDelete(booking.Status(current.Status)); err != nil {
			httperr.BadRequest(c, "invalid_state", "Only completed or cancelled bookings can be deleted.")
			return
		}
	}

	if err := adminClient(c, h.cfg).AdminDeleteBooking(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Remove(id)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}
