package repository

import (
	"context"

	"order_pricing/internal/domain/client"
)

type ClientReader interface {
	// LoadAll returns clients in storage order. It fails with
	// domain.ErrStoreNotFound when the backing store does not exist yet.
	LoadAll(ctx context.Context) ([]client.Client, error)
	// Exists reports false, not an error, for a missing store.
	Exists(ctx context.Context, email string) (bool, error)
}

type ClientWriter interface {
	// Save fails with domain.ErrDuplicateClient when the email is taken and
	// writes nothing in that case.
	Save(ctx context.Context, c client.Client) error
}

type ClientRepository interface {
	ClientReader
	ClientWriter
}
