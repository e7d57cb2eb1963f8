package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
	"order_pricing/internal/domain/repository"
)

const undefinedTable = "42P01"

// ClientRepository stores clients in a "clients" table. The table is created
// on first Save; until then the store counts as not found, like a missing
// flat file.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Save(ctx context.Context, c client.Client) error {
	if err := r.ensureTable(ctx); err != nil {
		return fmt.Errorf("ensure clients table: %w", err)
	}

	const query = `
		INSERT INTO clients (name, email, tier)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING;
	`
	tag, err := r.pool.Exec(ctx, query, c.Name(), c.Email(), c.Tier())
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateClient, c.Email())
	}
	return nil
}

func (r *ClientRepository) Exists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1);`

	var found bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&found)
	if isUndefinedTable(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query client: %w", err)
	}
	return found, nil
}

func (r *ClientRepository) LoadAll(ctx context.Context) ([]client.Client, error) {
	const query = `
		SELECT name, email, tier
		FROM clients
		ORDER BY id;
	`
	rows, err := r.pool.Query(ctx, query)
	if isUndefinedTable(err) {
		return nil, fmt.Errorf("%w: table clients", domain.ErrStoreNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]client.Client, 0)
	for rows.Next() {
		var name, email, tier string
		if err := rows.Scan(&name, &email, &tier); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		c, err := client.NewClient(name, email, tier)
		if err != nil {
			continue
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: table clients", domain.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("read clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS clients (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			tier TEXT NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}
