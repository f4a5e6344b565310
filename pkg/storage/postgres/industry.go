package postgres

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	industriesTable = "industries"
)

func (p *PgSQL) industryBy(ctx context.Context, ds *goqu.SelectDataset) (result.Maybe[domain.Industry], error) {
	var row PgIndustry
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return result.None[domain.Industry](), fmt.Errorf("could not fetch industry from pg: %w", err)
	}
	if !found {
		return result.None[domain.Industry](), nil
	}

	industry, err := row.ToDomain()
	if err != nil {
		return result.None[domain.Industry](), err
	}

	return result.Some(industry), nil
}

func (p *PgSQL) IndustryByID(ctx context.Context, id int64) (result.Maybe[domain.Industry], error) {
	return p.industryBy(ctx, p.Builder.From(industriesTable).
		Where(goqu.I("id").Eq(id)))
}

// IndustryByName matches case-insensitively on a substring of the name.
func (p *PgSQL) IndustryByName(ctx context.Context, text string) (result.Maybe[domain.Industry], error) {
	return p.industryBy(ctx, p.Builder.From(industriesTable).
		Where(goqu.I("name").ILike(containsPattern(text))).
		Order(goqu.I("id").Asc()))
}
