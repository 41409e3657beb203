package upstream

import (
	"context"

	"github.com/mechhub/portal/internal/models"
)

// ======================================================
// ADMIN — BOOKINGS
// ======================================================

func (c *Client) AdminListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, "GET", "/admin/bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) AdminCreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	var created models.Booking
	if err := c.do(ctx, "POST", "/admin/bookings", nil, b, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AdminUpdateBookingStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	var updated models.Booking
	body := map[string]string{"status": status}
	if err := c.do(ctx, "PUT", "/admin/bookings/"+id+"/status", nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminReassignBooking(ctx context.Context, id, mechanicID string) (*models.Booking, error) {
	var updated models.Booking
	body := map[string]string{"mechanicId": mechanicID}
	if err := c.do(ctx, "PUT", "/admin/bookings/"+id+"/reassign", nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/bookings/"+id, nil, nil, nil)
}

// ======================================================
// ADMIN — MECHANICS
// ======================================================

func (c *Client) AdminListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	var mechanics []models.Mechanic
	if err := c.do(ctx, "GET", "/admin/mechanics", nil, nil, &mechanics); err != nil {
		return nil, err
	}
	return mechanics, nil
}

func (c *Client) AdminCreateMechanic(ctx context.Context, m *models.Mechanic) (*models.Mechanic, error) {
	var created models.Mechanic
	if err := c.do(ctx, "POST", "/admin/mechanics", nil, m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AdminUpdateMechanic(ctx context.Context, id string, m *models.Mechanic) (*models.Mechanic, error) {
	var updated models.Mechanic
	if err := c.do(ctx, "PUT", "/admin/mechanics/"+id, nil, m, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteMechanic(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/mechanics/"+id, nil, nil, nil)
}

// ======================================================
// ADMIN — CUSTOMERS
// ======================================================

func (c *Client) AdminListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.do(ctx, "GET", "/admin/customers", nil, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) AdminCreateCustomer(ctx context.Context, cust *models.Customer) (*models.Customer, error) {
	var created models.Customer
	if err := c.do(ctx, "POST", "/admin/customers", nil, cust, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AdminUpdateCustomer(ctx context.Context, id string, cust *models.Customer) (*models.Customer, error) {
	var updated models.Customer
	if err := c.do(ctx, "PUT", "/admin/customers/"+id, nil, cust, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/customers/"+id, nil, nil, nil)
}

// ======================================================
// ADMIN — SERVICES
// ======================================================

func (c *Client) AdminListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.do(ctx, "GET", "/admin/services", nil, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) AdminCreateService(ctx context.Context, s *models.Service) (*models.Service, error) {
	var created models.Service
	if err := c.do(ctx, "POST", "/admin/services", nil, s, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) AdminUpdateService(ctx context.Context, id string, s *models.Service) (*models.Service, error) {
	var updated models.Service
	if err := c.do(ctx, "PUT", "/admin/services/"+id, nil, s, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteService(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/services/"+id, nil, nil, nil)
}

// ======================================================
// ADMIN — SPARE PARTS
// ======================================================

func (c *Client) AdminListSpareParts(ctx context.Context) ([]models.SparePartRequest, error) {
	var parts []models.SparePartRequest
	if err := c.do(ctx, "GET", "/admin/spare-parts", nil, nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (c *Client) AdminUpdateSparePartStatus(ctx context.Context, id, status string) (*models.SparePartRequest, error) {
	var updated models.SparePartRequest
	body := map[string]string{"status": status}
	if err := c.do(ctx, "PUT", "/admin/spare-parts/"+id+"/status", nil, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ======================================================
// ADMIN — NOTIFICATIONS
// ======================================================

func (c *Client) AdminListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, "GET", "/admin/notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) AdminMarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	var updated models.Notification
	if err := c.do(ctx, "PUT", "/admin/notifications/"+id+"/read", nil, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) AdminDeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/notifications/"+id, nil, nil, nil)
}

// ======================================================
// ADMIN — ANALYTICS
// ======================================================

func (c *Client) AdminDashboardAnalytics(ctx context.Context) (*models.DashboardAnalytics, error) {
	var analytics models.DashboardAnalytics
	if err := c.do(ctx, "GET", "/admin/analytics/dashboard-analytics", nil, nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
