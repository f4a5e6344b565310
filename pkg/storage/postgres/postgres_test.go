package postgres_test

import (
	"context"
	root "customers"
	"customers/pkg/domain"
	"customers/pkg/storage/postgres"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "customers"
	testPassword = "customers"
	testDB       = "customers_test"
)

// startPostgres runs a throwaway postgres:17 and returns its host and port.
func startPostgres(ctx context.Context) (testcontainers.Container, string, int, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			// the server restarts once after running init scripts
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, "", 0, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, "", 0, fmt.Errorf("could not get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, "", 0, fmt.Errorf("could not get mapped port: %w", err)
	}

	return container, host, port.Int(), nil
}

// migrate applies the embedded schema migrations and the river queue tables,
// the same two steps the migrate command runs.
func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return fmt.Errorf("could not run river migrations: %w", err)
	}

	return nil
}

// setupTestDB returns a storage over a fresh, fully migrated database.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	container, host, port, err := startPostgres(ctx)
	if container != nil {
		t.Cleanup(func() { _ = container.Terminate(ctx) })
	}
	require.NoError(t, err)

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	require.NoError(t, migrate(ctx, pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
	}
}

// storedStatus reads a customer's tier outside of any transaction.
func storedStatus(t *testing.T, pg *postgres.PgSQL, id domain.CustomerID) domain.CustomerStatus {
	t.Helper()

	got, err := pg.CustomerByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, got.HasValue(), "customer %d should exist", id)

	return got.Value().Status()
}

func TestPgSQL_New_MigrationsAreRepeatable(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, pg.Ping(ctx))

	// a second run finds nothing to apply and does not duplicate the seed
	require.NoError(t, migrate(ctx, pg.DB.(*sql.DB)))

	var count int
	require.NoError(t, pg.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM industries`).Scan(&count))
	require.Len(t, domain.Industries(), count)
}
