package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mechhub/portal/internal/geo"
)

func TestFilters_Values(t *testing.T) {
	f := Filters{
		Search:      "brake",
		MinRating:   4,
		City:        "Mumbai",
		ServiceType: "Oil Change",
		OpenNow:     true,
		MaxDistance: 25,
		Page:        2,
		Limit:       20,
		User:        &geo.Coord{Lat: 19.0760, Lng: 72.8777},
	}

	v := f.Values()

	assert.Equal(t, "brake", v.Get("search"))
	assert.Equal(t, "4", v.Get("rating"))
	assert.Equal(t, "Mumbai", v.Get("city"))
	assert.Equal(t, "Oil Change", v.Get("serviceType"))
	assert.Equal(t, "true", v.Get("openNow"))
	assert.Equal(t, "25", v.Get("distance"))
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "20", v.Get("limit"))
	assert.Equal(t, "19.076", v.Get("userLat"))
	assert.Equal(t, "72.8777", v.Get("userLng"))
}

func TestFilters_ValuesZero(t *testing.T) {
	v := Filters{}.Values()

	// zero-valued filters are omitted; pagination always carries defaults
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Len(t, v, 2)

	assert.False(t, v.Has("search"))
	assert.False(t, v.Has("openNow"))
	assert.False(t, v.Has("userLat"))
}
