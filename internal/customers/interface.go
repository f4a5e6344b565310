// Package customers implements the customer use cases on top of the domain
// model and the storage contracts.
package customers

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
)

// CreateRequest carries the raw, unvalidated input of Create. Absent fields
// are None; a provided empty string is still a value and gets validated.
type CreateRequest struct {
	Name           result.Maybe[string]
	PrimaryEmail   result.Maybe[string]
	SecondaryEmail result.Maybe[string]
	Industry       result.Maybe[string]
}

//go:generate mockgen -package mockcustomers -source=interface.go -destination=mock/mockcustomers.go *
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*domain.Customer, error)
	Get(ctx context.Context, id domain.CustomerID) (*domain.Customer, error)
	FindByName(ctx context.Context, text string) (*domain.Customer, error)
	UpdateIndustry(ctx context.Context, id domain.CustomerID, industry result.Maybe[string]) (*domain.Customer, error)
	DisableEmailing(ctx context.Context, id domain.CustomerID) (*domain.Customer, error)
	Promote(ctx context.Context, id domain.CustomerID) (*domain.Customer, error)
	Industries(ctx context.Context, text string) ([]domain.Industry, error)
}
