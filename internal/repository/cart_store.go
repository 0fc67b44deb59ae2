package repository

import (
	"context"

	"food-delivery/internal/domain"
)

// CartStore holds at most one cart per user in an expiring cache.
// Get returns (nil, nil) on a cache miss; Delete is idempotent.
type CartStore interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, userID int64, cart *domain.Cart) error
	Delete(ctx context.Context, userID int64) error
}
