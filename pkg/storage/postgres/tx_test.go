package postgres_test

import (
	"context"
	"customers/pkg/domain"
	"customers/pkg/result"
	"customers/pkg/storage"
	"customers/pkg/storage/postgres"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newRegularCustomer(name string) *domain.Customer {
	return domain.NewCustomer(
		domain.MustName(name),
		domain.MustEmail("tx@example.com"),
		result.None[domain.Email](),
		domain.IndustryCars,
	)
}

// requireNoCustomerNamed asserts that nothing named name was committed.
func requireNoCustomerNamed(t *testing.T, pg *postgres.PgSQL, name string) {
	t.Helper()

	got, err := pg.CustomerByName(context.Background(), name)
	require.NoError(t, err)
	require.True(t, got.HasNoValue(), "%q should not be stored", name)
}

func TestPgSQL_Begin_IsolatesUntilCommit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = tx.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	added, err := tx.AddCustomer(ctx, newRegularCustomer("Isolated Ida"))
	require.NoError(t, err)

	// visible inside, invisible outside
	got, err := tx.CustomerByID(ctx, added.ID())
	require.NoError(t, err)
	require.True(t, got.HasValue())
	requireNoCustomerNamed(t, pg, "Isolated Ida")

	require.NoError(t, tx.Commit())
	require.Equal(t, domain.CustomerStatusRegular, storedStatus(t, pg, added.ID()))
}

func TestPgSQL_Rollback_DiscardsCustomer(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.AddCustomer(ctx, newRegularCustomer("Rolled Back Rita"))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	requireNoCustomerNamed(t, pg, "Rolled Back Rita")
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		var id domain.CustomerID
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			c, err := s.AddCustomer(ctx, newRegularCustomer("Committed Carl"))
			if err != nil {
				return err //nolint: wrapcheck
			}
			id = c.ID()

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, domain.CustomerStatusRegular, storedStatus(t, pg, id))
	})

	t.Run("rolls back when the callback fails", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.AddCustomer(ctx, newRegularCustomer("Failed Fiona"))
			require.NoError(t, err)

			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
		requireNoCustomerNamed(t, pg, "Failed Fiona")
	})

	t.Run("rolls back and re-panics when the callback panics", func(t *testing.T) {
		require.PanicsWithValue(t, "gold cannot be promoted", func() {
			_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
				_, err := s.AddCustomer(ctx, newRegularCustomer("Panicking Pam"))
				require.NoError(t, err)

				panic("gold cannot be promoted")
			})
		})
		requireNoCustomerNamed(t, pg, "Panicking Pam")

		// the connection went back to the pool usable
		require.NoError(t, pg.Ping(ctx))
	})
}

func TestPgSQL_CustomerByIDForUpdate_SerializesWriters(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	c, err := pg.AddCustomer(ctx, newRegularCustomer("Locked Lou"))
	require.NoError(t, err)

	holder, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = holder.Rollback() }()

	locked, err := holder.CustomerByIDForUpdate(ctx, c.ID())
	require.NoError(t, err)
	require.True(t, locked.HasValue())

	// a second writer waits on the row lock until its deadline
	waitCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	err = pg.WithTx(waitCtx, func(s storage.AllStorage) error {
		_, err := s.CustomerByIDForUpdate(waitCtx, c.ID())

		return err //nolint: wrapcheck
	})
	require.Error(t, err)

	// once the holder promotes and commits, the next writer sees the new tier
	locked.Value().Promote()
	require.NoError(t, holder.UpdateCustomer(ctx, locked.Value()))
	require.NoError(t, holder.Commit())

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		got, err := s.CustomerByIDForUpdate(ctx, c.ID())
		require.NoError(t, err)
		require.Equal(t, domain.CustomerStatusPreferred, got.Value().Status())

		return nil
	})
	require.NoError(t, err)
}
