package repository

import (
	"context"
	"time"

	"food-delivery/internal/domain"
)

// OrderRepository persists durable order documents. FindByID returns
// (nil, nil) when no order matches, including malformed identifiers.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, at time.Time) (bool, error)
}
