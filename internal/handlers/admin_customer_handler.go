package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/audit"
	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/httperr"
	"github.com/mechhub/portal/internal/httpresp"
	"github.com/mechhub/portal/internal/models"
	"github.com/mechhub/portal/internal/panel"
	"github.com/mechhub/portal/internal/validators"
)

type AdminCustomerHandler struct {
	cfg   *config.Config
	store *panel.Store[models.Customer]
	audit *audit.Dispatcher
}

func NewAdminCustomerHandler(cfg *config.Config, dispatcher *audit.Dispatcher) *AdminCustomerHandler {
	return &AdminCustomerHandler{
		cfg:   cfg,
		store: panel.NewStore(func(cust models.Customer) string { return cust.ID }),
		audit: dispatcher,
	}
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *AdminCustomerHandler) List(c *gin.Context) {
	customers, err := adminClient(c, h.cfg).AdminListCustomers(c.Request.Context())
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Replace(customers)
	httpresp.List(c, customers)
}

// Create enforces the explicit required-field check of the new-customer
// form: a missing field or a bogus email domain aborts before the call.
func (h *AdminCustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer form.")
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_required_fields", "Name, email and phone are required.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	created, err := adminClient(c, h.cfg).AdminCreateCustomer(c.Request.Context(), &models.Customer{
		Name:  req.Name,
		Email: email,
		Phone: req.Phone,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Prepend(*created)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: created.ID,
	})

	httpresp.Created(c, created)
}

func (h *AdminCustomerHandler) Update(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid customer form.")
		return
	}

	id := c.Param("id")

	updated, err := adminClient(c, h.cfg).AdminUpdateCustomer(c.Request.Context(), id, &models.Customer{
		ID:    id,
		Name:  req.Name,
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: req.Phone,
	})
	if err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Splice(*updated)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: id,
	})

	httpresp.OK(c, updated)
}

func (h *AdminCustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := adminClient(c, h.cfg).AdminDeleteCustomer(c.Request.Context(), id); err != nil {
		writeUpstream(c, err)
		return
	}

	h.store.Remove(id)

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": id})
}
