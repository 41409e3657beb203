package models

type Service struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"serviceName"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Duration    int     `json:"duration"` // minutes
	Category    string  `json:"category"`
	Status      string  `json:"status"` // active / inactive
}
