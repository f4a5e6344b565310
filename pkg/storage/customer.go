package storage

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
)

// CustomerStorage persists customer aggregates.
type CustomerStorage interface {
	// CustomerByID returns the customer with the given identity, if any.
	CustomerByID(ctx context.Context, ID domain.CustomerID) (result.Maybe[*domain.Customer], error)
	// CustomerByIDForUpdate is like CustomerByID but also locks the row until the
	// surrounding transaction ends. It must be called inside a transaction.
	CustomerByIDForUpdate(ctx context.Context, ID domain.CustomerID) (result.Maybe[*domain.Customer], error)
	// CustomerByName returns the first customer, by identity, whose name contains text.
	CustomerByName(ctx context.Context, text string) (result.Maybe[*domain.Customer], error)
	// AddCustomer stores a new customer and returns it with its identity and
	// timestamps assigned.
	AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	// UpdateCustomer writes the mutable state of an existing customer (industry,
	// emailing flag, status). It returns ErrNotStored when no row matches.
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
}
