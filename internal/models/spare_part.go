package models

import "time"

type SparePartRequest struct {
	RequestID  string    `json:"requestId"`
	MechanicID string    `json:"mechanicId"`
	ServiceID  string    `json:"serviceId"`
	PartName   string    `json:"partName"`
	Quantity   int       `json:"quantity"`
	Urgency    string    `json:"urgency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
