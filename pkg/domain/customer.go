package domain

import (
	"customers/pkg/result"
	"fmt"
	"time"
)

// CustomerID identifies a persisted customer. It is assigned by storage; the
// zero value means the customer has not been stored yet.
type CustomerID int64

// CustomerStatus is the loyalty tier of a customer.
type CustomerStatus string

const (
	// CustomerStatusRegular is the initial tier.
	CustomerStatusRegular CustomerStatus = "REGULAR"
	// CustomerStatusPreferred follows Regular.
	CustomerStatusPreferred CustomerStatus = "PREFERRED"
	// CustomerStatusGold is the highest tier.
	CustomerStatusGold CustomerStatus = "GOLD"
)

// Valid reports whether s is a known tier.
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusRegular, CustomerStatusPreferred, CustomerStatusGold:
		return true
	default:
		return false
	}
}

// Customer is the aggregate root. Its state only changes through its methods.
type Customer struct {
	id             CustomerID
	name           Name
	primaryEmail   Email
	secondaryEmail result.Maybe[Email]
	emailSettings  EmailSettings
	status         CustomerStatus

	createdAt time.Time
	updatedAt time.Time
}

// NewCustomer assembles a new Regular customer with emailing enabled. Inputs
// are expected to come from the validating factories.
func NewCustomer(name Name, primaryEmail Email, secondaryEmail result.Maybe[Email], industry Industry) *Customer {
	return &Customer{
		name:           name,
		primaryEmail:   primaryEmail,
		secondaryEmail: secondaryEmail,
		emailSettings:  NewEmailSettings(industry, false),
		status:         CustomerStatusRegular,
	}
}

// CustomerSnapshot carries the persisted state of a customer.
type CustomerSnapshot struct {
	ID               CustomerID
	Name             Name
	PrimaryEmail     Email
	SecondaryEmail   result.Maybe[Email]
	Industry         Industry
	EmailingDisabled bool
	Status           CustomerStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreCustomer rebuilds a customer from storage. It panics on an unknown
// tier or industry, both of which storage must reject beforehand.
func RestoreCustomer(s CustomerSnapshot) *Customer {
	if !s.Status.Valid() {
		panic(fmt.Sprintf("domain: unknown customer status %q", s.Status))
	}

	return &Customer{
		id:             s.ID,
		name:           s.Name,
		primaryEmail:   s.PrimaryEmail,
		secondaryEmail: s.SecondaryEmail,
		emailSettings:  NewEmailSettings(s.Industry, s.EmailingDisabled),
		status:         s.Status,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

// Snapshot returns the state of the customer for persistence.
func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		ID:               c.id,
		Name:             c.name,
		PrimaryEmail:     c.primaryEmail,
		SecondaryEmail:   c.secondaryEmail,
		Industry:         c.emailSettings.Industry(),
		EmailingDisabled: c.emailSettings.IsDisabled(),
		Status:           c.status,
		CreatedAt:        c.createdAt,
		UpdatedAt:        c.updatedAt,
	}
}

func (c *Customer) ID() CustomerID                      { return c.id }
func (c *Customer) Name() Name                          { return c.name }
func (c *Customer) PrimaryEmail() Email                 { return c.primaryEmail }
func (c *Customer) SecondaryEmail() result.Maybe[Email] { return c.secondaryEmail }
func (c *Customer) EmailSettings() EmailSettings        { return c.emailSettings }
func (c *Customer) Status() CustomerStatus              { return c.status }
func (c *Customer) CreatedAt() time.Time                { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time                { return c.updatedAt }

// Industry returns the current industry. It is the one the email settings use.
func (c *Customer) Industry() Industry { return c.emailSettings.Industry() }

// UpdateIndustry moves the customer to another industry. A disabled emailing
// flag stays disabled.
func (c *Customer) UpdateIndustry(industry Industry) {
	c.emailSettings.UpdateIndustry(industry)
}

// DisableEmailing opts the customer out of campaign emails.
func (c *Customer) DisableEmailing() {
	c.emailSettings.DisableEmailing()
}

// CanBePromoted reports whether a higher tier exists.
func (c *Customer) CanBePromoted() bool {
	return c.status != CustomerStatusGold
}

// Promote moves the customer one tier up. Callers must check CanBePromoted
// first; promoting a Gold customer panics.
func (c *Customer) Promote() {
	switch c.status {
	case CustomerStatusRegular:
		c.status = CustomerStatusPreferred
	case CustomerStatusPreferred:
		c.status = CustomerStatusGold
	default:
		panic(fmt.Sprintf("domain: customer %d with status %s cannot be promoted", c.id, c.status))
	}
}
