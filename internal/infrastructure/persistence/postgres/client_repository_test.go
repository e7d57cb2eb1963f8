package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
)

// newTestPool connects to POSTGRES_TEST_DSN and gives each test a fresh schema.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	pool, err := NewPoolFromDSN(dsn, 2)
	require.NoError(t, err, "NewPoolFromDSN failed")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	schema := fmt.Sprintf("clients_test_%d", time.Now().UnixNano())
	_, err = pool.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	pool.Close()

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err = pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		pool.Close()
	})
	return pool
}

func TestClientRepository_RoundTrip(t *testing.T) {
	repo := NewClientRepository(newTestPool(t))
	ctx := context.Background()

	_, err := repo.LoadAll(ctx)
	require.ErrorIs(t, err, domain.ErrStoreNotFound)

	exists, err := repo.Exists(ctx, "joao@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	joao, err := client.NewClient("João Silva", "joao@example.com", "gold")
	require.NoError(t, err)
	maria, err := client.NewClient("Maria Santos", "maria@example.com", "silver")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, joao))
	require.NoError(t, repo.Save(ctx, maria))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []client.Client{joao, maria}, got)

	err = repo.Save(ctx, joao)
	assert.ErrorIs(t, err, domain.ErrDuplicateClient)

	got, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "42P01"})))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(nil))
}
