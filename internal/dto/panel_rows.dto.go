package dto

import (
	"github.com/mechhub/portal/internal/domain/booking"
	"github.com/mechhub/portal/internal/models"
)

// BookingRowDTO decorates a booking with the action menu entries its current
// status allows — the UI renders exactly these and nothing else.
type BookingRowDTO struct {
	models.Booking
	Actions []booking.Action `json:"actions"`
}

func BookingRow(b models.Booking) BookingRowDTO {
	return BookingRowDTO{
		Booking: b,
		Actions: booking.AvailableActions(booking.Status(b.Status)),
	}
}

func BookingRows(bookings []models.Booking) []BookingRowDTO {
	rows := make([]BookingRowDTO, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, BookingRow(b))
	}
	return rows
}

// SparePartRowDTO decorates a request with the forward-only next statuses.
type SparePartRowDTO struct {
	models.SparePartRequest
	NextStatuses []booking.PartStatus `json:"nextStatuses"`
}

func SparePartRow(p models.SparePartRequest) SparePartRowDTO {
	return SparePartRowDTO{
		SparePartRequest: p,
		NextStatuses:     booking.PartActions(booking.PartStatus(p.Status)),
	}
}

func SparePartRows(parts []models.SparePartRequest) []SparePartRowDTO {
	rows := make([]SparePartRowDTO, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, SparePartRow(p))
	}
	return rows
}
