package postgres

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
	"customers/pkg/storage"
	"database/sql"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	customersTable = "customers"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching any value that contains text.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func (p *PgSQL) customerBy(ctx context.Context, ds *goqu.SelectDataset) (result.Maybe[*domain.Customer], error) {
	var row PgCustomer
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return result.None[*domain.Customer](), fmt.Errorf("could not fetch customer from pg: %w", err)
	}
	if !found {
		return result.None[*domain.Customer](), nil
	}

	customer, err := row.ToDomain()
	if err != nil {
		return result.None[*domain.Customer](), err
	}

	return result.Some(customer), nil
}

// CustomerByID returns the customer with the given id.
func (p *PgSQL) CustomerByID(ctx context.Context, id domain.CustomerID) (result.Maybe[*domain.Customer], error) {
	return p.customerBy(ctx, p.Builder.From(customersTable).
		Where(goqu.I("id").Eq(int64(id))))
}

// CustomerByIDForUpdate returns the customer with the given id and locks its
// row for the rest of the transaction. It returns storage.ErrNotInTx outside
// a transaction, where the lock would be released immediately.
func (p *PgSQL) CustomerByIDForUpdate(ctx context.Context, id domain.CustomerID) (result.Maybe[*domain.Customer], error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return result.None[*domain.Customer](), storage.ErrNotInTx
	}

	return p.customerBy(ctx, p.Builder.From(customersTable).
		Where(goqu.I("id").Eq(int64(id))).
		ForUpdate(exp.Wait))
}

// CustomerByName returns the customer with the lowest id whose name contains text.
func (p *PgSQL) CustomerByName(ctx context.Context, text string) (result.Maybe[*domain.Customer], error) {
	return p.customerBy(ctx, p.Builder.From(customersTable).
		Where(goqu.I("name").Like(containsPattern(text))).
		Order(goqu.I("id").Asc()))
}

// AddCustomer inserts the customer and returns the stored row, including the
// generated id and created_at.
func (p *PgSQL) AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	var pgCustomer PgCustomer
	pgCustomer.FromDomain(customer)

	var row PgCustomer
	if _, err := p.Builder.Insert(customersTable).
		Rows(pgCustomer).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store customer into pg: %w", err)
	}

	return row.ToDomain()
}

// UpdateCustomer writes the mutable columns of the customer and sets updated_at.
// Name and emails are never changed after creation.
func (p *PgSQL) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	var pgCustomer PgCustomer
	pgCustomer.FromDomain(customer)

	res, err := p.Builder.Update(customersTable).
		Set(goqu.Record{
			"industry_id":       pgCustomer.IndustryID,
			"emailing_disabled": pgCustomer.EmailingDisabled,
			"status":            pgCustomer.Status,
			"updated_at":        goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(pgCustomer.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update customer in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", pgCustomer.ID, storage.ErrNotStored)
	}

	return nil
}
