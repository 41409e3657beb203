package models

// Car is owned by exactly one customer; referenced by bookings via id.
type Car struct {
	ID           string `json:"id"`
	Name         string `json:"name"` // make
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
}
