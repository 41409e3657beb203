package models

type MechanicLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	MapLink string  `json:"mapLink"`
}

type Mechanic struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email"`
	Location MechanicLocation `json:"location"`

	Services []string `json:"services"`
	Rating   float64  `json:"rating"`
	IsActive bool     `json:"isActive"`
	OpenNow  bool     `json:"openNow"`

	TotalBookings int `json:"totalBookings"`

	// Filled client-side from the user's coordinates; not part of the
	// server record.
	Distance *float64 `json:"distance,omitempty"`
}
