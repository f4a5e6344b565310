package storage

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
)

// IndustryStorage reads the industries table. Rows are resolved onto the
// domain catalog; a row unknown to the catalog is reported as an error.
type IndustryStorage interface {
	// IndustryByID returns the industry with the given identity, if stored.
	IndustryByID(ctx context.Context, ID int64) (result.Maybe[domain.Industry], error)
	// IndustryByName returns the first industry whose name contains text,
	// ignoring case.
	IndustryByName(ctx context.Context, text string) (result.Maybe[domain.Industry], error)
}
