package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL container for testing and applies the schema.
// Returns a cleanup function that must be called after tests complete.
func setupTestDB(t *testing.T) (*Pool, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err, "failed to create pool")

	applySchema(t, ctx, pool)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// applySchema creates the run_records table. Kept inline so the test
// package does not import the migrations package (which imports this one);
// the embedded migration file carries the same statements.
func applySchema(t *testing.T, ctx context.Context, pool *Pool) {
	t.Helper()

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS run_records (
			run_id           TEXT PRIMARY KEY,
			security_id      TEXT NOT NULL,
			strategy_name    TEXT NOT NULL,
			simulation_style TEXT NOT NULL,
			trade_count      INTEGER NOT NULL,
			order_count      INTEGER NOT NULL,
			event_count      INTEGER NOT NULL,
			orders_placed    INTEGER NOT NULL,
			fill_count       INTEGER NOT NULL,
			final_position   DOUBLE PRECISION NOT NULL,
			cash             DOUBLE PRECISION NOT NULL,
			pnl              DOUBLE PRECISION NOT NULL,
			period_start     TIMESTAMPTZ NOT NULL,
			period_end       TIMESTAMPTZ NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	require.NoError(t, err, "failed to create run_records table")

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_run_records_security_id
			ON run_records (security_id, period_start)
	`)
	require.NoError(t, err, "failed to create run_records index")
}
