package repository

import (
	"context"

	"food-delivery/internal/domain"
)

type RatingRepository interface {
	Save(ctx context.Context, rating *domain.Rating) error
	FindByMenuItem(ctx context.Context, menuItemID int64) ([]domain.Rating, error)
}
