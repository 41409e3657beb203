package models

import "time"

type Customer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	TotalBookings int       `json:"totalBookings"`
	CreatedAt     time.Time `json:"createdAt"`
}
