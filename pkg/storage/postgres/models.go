package postgres

import (
	"customers/pkg/domain"
	"customers/pkg/result"
	"customers/pkg/storage"
	"database/sql"
	"fmt"
	"time"
)

type PgCustomer struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Name           string         `db:"name"`
	PrimaryEmail   string         `db:"primary_email"`
	SecondaryEmail sql.NullString `db:"secondary_email"`

	IndustryID       int64  `db:"industry_id"`
	EmailingDisabled bool   `db:"emailing_disabled"`
	Status           string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain re-validates the stored values, so a row written by other means
// cannot produce an aggregate that breaks its invariants.
func (p *PgCustomer) ToDomain() (*domain.Customer, error) {
	name := domain.CreateName(result.Some(p.Name))
	if name.IsFailure() {
		return nil, fmt.Errorf("customer %d has an invalid name: %s", p.ID, name.Error())
	}

	primary := domain.CreateEmail(result.Some(p.PrimaryEmail))
	if primary.IsFailure() {
		return nil, fmt.Errorf("customer %d has an invalid primary email: %s", p.ID, primary.Error())
	}

	secondary := result.None[domain.Email]()
	if p.SecondaryEmail.Valid {
		email := domain.CreateEmail(result.Some(p.SecondaryEmail.String))
		if email.IsFailure() {
			return nil, fmt.Errorf("customer %d has an invalid secondary email: %s", p.ID, email.Error())
		}
		secondary = result.Some(email.Value())
	}

	industry, ok := domain.IndustryByID(p.IndustryID)
	if !ok {
		return nil, fmt.Errorf("customer %d references industry %d: %w", p.ID, p.IndustryID, storage.ErrUnknownIndustry)
	}

	status := domain.CustomerStatus(p.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("customer %d has an unknown status %q", p.ID, p.Status)
	}

	return domain.RestoreCustomer(domain.CustomerSnapshot{
		ID:               domain.CustomerID(p.ID),
		Name:             name.Value(),
		PrimaryEmail:     primary.Value(),
		SecondaryEmail:   secondary,
		Industry:         industry,
		EmailingDisabled: p.EmailingDisabled,
		Status:           status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}), nil
}

func (p *PgCustomer) FromDomain(customer *domain.Customer) {
	s := customer.Snapshot()

	secondary := sql.NullString{}
	if s.SecondaryEmail.HasValue() {
		secondary = sql.NullString{String: s.SecondaryEmail.Value().String(), Valid: true}
	}

	*p = PgCustomer{
		ID:               int64(s.ID),
		Name:             s.Name.String(),
		PrimaryEmail:     s.PrimaryEmail.String(),
		SecondaryEmail:   secondary,
		IndustryID:       s.Industry.ID(),
		EmailingDisabled: s.EmailingDisabled,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  s.UpdatedAt,
			Valid: !s.UpdatedAt.IsZero(),
		},
	}
}

type PgIndustry struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (p *PgIndustry) ToDomain() (domain.Industry, error) {
	industry, ok := domain.IndustryByID(p.ID)
	if !ok {
		return 0, fmt.Errorf("industry %d (%s): %w", p.ID, p.Name, storage.ErrUnknownIndustry)
	}

	return industry, nil
}
