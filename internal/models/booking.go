package models

import "time"

type Booking struct {
	ID string `json:"id"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`
	LicensePlate string `json:"licensePlate"`

	ServiceType string    `json:"serviceType"`
	DateTime    time.Time `json:"dateTime"`
	Amount      float64   `json:"amount"`
	SpareParts  []string  `json:"spareParts"`

	Status     string `json:"status"`
	MechanicID string `json:"mechanicId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
