package v1handler

import (
	"customers/internal/customers"
	"customers/pkg/domain"
	"customers/pkg/result"
	"customers/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type CreateCustomerRequest struct {
	Name           *string `json:"name"`
	PrimaryEmail   *string `json:"primaryEmail"`
	SecondaryEmail *string `json:"secondaryEmail"`
	Industry       *string `json:"industry"`
}

type UpdateCustomerRequest struct {
	Industry *string `json:"industry"`
}

type EmailSettings struct {
	IsDisabled    bool   `json:"isDisabled"`
	Industry      string `json:"industry"`
	EmailCampaign string `json:"emailCampaign"`
}

type Customer struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	PrimaryEmail   string        `json:"primaryEmail"`
	SecondaryEmail *string       `json:"secondaryEmail,omitempty"`
	Industry       string        `json:"industry"`
	Settings       EmailSettings `json:"settings"`
	Status         string        `json:"status"`
}

func DomainCustomerToV1(c *domain.Customer) Customer {
	var secondary *string
	if c.SecondaryEmail().HasValue() {
		s := c.SecondaryEmail().Value().String()
		secondary = &s
	}
	settings := c.EmailSettings()

	return Customer{
		ID:             int64(c.ID()),
		Name:           c.Name().String(),
		PrimaryEmail:   c.PrimaryEmail().String(),
		SecondaryEmail: secondary,
		Industry:       c.Industry().Name(),
		Settings: EmailSettings{
			IsDisabled:    settings.IsDisabled(),
			Industry:      settings.Industry().Name(),
			EmailCampaign: string(settings.EmailCampaign()),
		},
		Status: string(c.Status()),
	}
}

func customerID(r *http.Request) (domain.CustomerID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid customer id: %s", raw)
	}

	return domain.CustomerID(id), nil
}

// CreateCustomer validates and stores a new customer.
func (h Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.Create(r.Context(), customers.CreateRequest{
		Name:           result.FromPtr(req.Name),
		PrimaryEmail:   result.FromPtr(req.PrimaryEmail),
		SecondaryEmail: result.FromPtr(req.SecondaryEmail),
		Industry:       result.FromPtr(req.Industry),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, DomainCustomerToV1(c))
}

// GetCustomer returns a customer by id.
func (h Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainCustomerToV1(c))
}

// FindCustomer returns the first customer whose name contains the name query parameter.
func (h Handler) FindCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Customers.FindByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainCustomerToV1(c))
}

// UpdateCustomer changes the industry of a customer.
func (h Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.UpdateIndustry(r.Context(), id, result.FromPtr(req.Industry))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainCustomerToV1(c))
}

// DisableEmailing opts a customer out of campaign emails.
func (h Handler) DisableEmailing(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.DisableEmailing(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainCustomerToV1(c))
}

// PromoteCustomer moves a customer one tier up.
func (h Handler) PromoteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Customers.Promote(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainCustomerToV1(c))
}
