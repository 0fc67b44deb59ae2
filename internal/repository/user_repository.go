package repository

import (
	"context"

	"food-delivery/internal/domain"
)

// UserRepository persists user accounts in the relational store.
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
