package search

import (
	"net/url"
	"strconv"

	"github.com/mechhub/portal/internal/geo"
)

// Filters is the full mechanic-search filter set. Zero values are omitted
// from the query; the backend performs the authoritative filtering.
type Filters struct {
	Search      string     `json:"search"`
	MinRating   float64    `json:"minRating"`
	City        string     `json:"city"`
	ServiceType string     `json:"serviceType"`
	OpenNow     bool       `json:"openNow"`
	MaxDistance float64    `json:"maxDistance"`
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
	User        *geo.Coord `json:"user,omitempty"`
}

const defaultLimit = 10

func (f Filters) Values() url.Values {
	v := url.Values{}

	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.MinRating > 0 {
		v.Set("rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.ServiceType != "" {
		v.Set("serviceType", f.ServiceType)
	}
	if f.OpenNow {
		v.Set("openNow", "true")
	}
	if f.MaxDistance > 0 {
		v.Set("distance", strconv.FormatFloat(f.MaxDistance, 'f', -1, 64))
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))

	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	v.Set("limit", strconv.Itoa(limit))

	if f.User != nil {
		v.Set("userLat", strconv.FormatFloat(f.User.Lat, 'f', -1, 64))
		v.Set("userLng", strconv.FormatFloat(f.User.Lng, 'f', -1, 64))
	}

	return v
}
