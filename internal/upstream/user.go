package upstream

import (
	"context"

	"github.com/mechhub/portal/internal/domain/booking"
	"github.com/mechhub/portal/internal/models"
)

// ======================================================
// USER ENDPOINTS
// ======================================================

func (c *Client) MechanicByID(ctx context.Context, id string) (*models.Mechanic, error) {
	var m models.Mechanic
	if err := c.do(ctx, "GET", "/user/mechanic/"+id, nil, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateBooking(ctx context.Context, payload *booking.Payload) (*models.Booking, error) {
	var b models.Booking
	if err := c.do(ctx, "POST", "/user/booking-create", nil, payload, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// -------- Cars --------

func (c *Client) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := c.do(ctx, "GET", "/user/cars", nil, nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *Client) CreateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	var created models.Car
	if err := c.do(ctx, "POST", "/user/cars", nil, car, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCar(ctx context.Context, id string, car *models.Car) (*models.Car, error) {
	var updated models.Car
	if err := c.do(ctx, "PUT", "/user/cars/"+id, nil, car, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/user/cars/"+id, nil, nil, nil)
}

// -------- History --------

func (c *Client) ServiceHistory(ctx context.Context) ([]models.Booking, error) {
	var history []models.Booking
	if err := c.do(ctx, "GET", "/user/service-history", nil, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
