package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/geo"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/search"
)

// ======================================================
// HANDLER
// ======================================================

type SearchHandler struct {
	cfg      *config.Config
	registry *search.Registry
}

func NewSearchHandler(cfg *config.Config, registry *search.Registry) *SearchHandler {
	return &SearchHandler{cfg: cfg, registry: registry}
}

// ======================================================
// QUERY
// ======================================================

// Query records a filter change for the session's watcher. The watcher
// debounces the upstream refetch, so rapid changes collapse into one request
// per settled filter state; the returned snapshot may still be the previous
// result with pending=true.
func (h *SearchHandler) Query(c *gin.Context) {
	sid := c.Query("sid")
	if sid == "" {
		sid = uuid.NewString()
	}

	watcher := h.registry.Get(sid)
	watcher.Update(h.parseFilters(c))

	httpresp.OK(c, gin.H{
		"sid":      sid,
		"snapshot": watcher.Snapshot(),
	})
}

// Results returns the latest settled snapshot for the session.
func (h *SearchHandler) Results(c *gin.Context) {
	sid := c.Query("sid")
	if sid == "" {
		httperr.BadRequest(c, "missing_sid", "Search session id is required.")
		return
	}

	httpresp.OK(c, gin.H{
		"sid":      sid,
		"snapshot": h.registry.Get(sid).Snapshot(),
	})
}

func (h *SearchHandler) parseFilters(c *gin.Context) search.Filters {
	f := search.Filters{
		Search:      c.Query("search"),
		City:        c.Query("city"),
		ServiceType: c.Query("serviceType"),
		OpenNow:     c.Query("openNow") == "true",
	}

	f.MinRating, _ = strconv.ParseFloat(c.Query("rating"), 64)
	f.MaxDistance, _ = strconv.ParseFloat(c.Query("distance"), 64)
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))

	latStr, lngStr := c.Query("userLat"), c.Query("userLng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			f.User = &geo.Coord{Lat: lat, Lng: lng}
		}
	}

	return f
}

// ======================================================
// LOCATION
// ======================================================

type locationReport struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Reason string   `json:"reason"`
}

// Current implements geo.LocationProvider over what the device reported:
// either a coordinate pair or a failure reason.
func (r locationReport) Current(_ context.Context) (geo.Coord, error) {
	if r.Reason != "" {
		switch reason := geo.FailureReason(r.Reason); reason {
		case geo.ReasonPermissionDenied, geo.ReasonTimeout, geo.ReasonUnsupported:
			return geo.Coord{}, &geo.LocationError{Reason: reason}
		default:
			return geo.Coord{}, &geo.LocationError{Reason: geo.ReasonUnavailable}
		}
	}
	if r.Lat == nil || r.Lng == nil {
		return geo.Coord{}, &geo.LocationError{Reason: geo.ReasonUnavailable}
	}
	return geo.Coord{Lat: *r.Lat, Lng: *r.Lng}, nil
}

// Location resolves the user's position: the reported coordinates when
// acquisition succeeded, otherwise the default coordinate with an advisory.
// Retrying is just calling this again.
func (h *SearchHandler) Location(c *gin.Context) {
	var report locationReport
	if err := c.ShouldBindJSON(&report); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid location report.")
		return
	}

	acquirer := geo.NewAcquirer(
		report,
		geo.Coord{Lat: h.cfg.DefaultLat, Lng: h.cfg.DefaultLng},
		h.cfg.LocationTimeout,
	)

	httpresp.OK(c, acquirer.Acquire(c.Request.Context()))
}

// ======================================================
// MAP BOUNDS
// ======================================================

type boundsRequest struct {
	User     geo.Coord  `json:"user" binding:"required"`
	Mechanic *geo.Coord `json:"mechanic"`
}

// Bounds computes the box the map view fits to: the user alone, or user plus
// selected mechanic, with the straight-line distance between them.
func (h *SearchHandler) Bounds(c *gin.Context) {
	var req boundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "User coordinates are required.")
		return
	}

	if req.Mechanic == nil {
		httpresp.OK(c, gin.H{"bounds": geo.FitBounds(req.User)})
		return
	}

	httpresp.OK(c, gin.H{
		"bounds":   geo.FitBounds(req.User, *req.Mechanic),
		"distance": geo.Distance(req.User, *req.Mechanic),
	})
}
