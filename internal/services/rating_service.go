package services

import (
	"context"
	"errors"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/repository"
)

const maxCommentLength = 500

var (
	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 5")
	ErrCommentTooLong = errors.New("comment must be at most 500 characters")
	ErrInvalidRater   = errors.New("userId and menuItemId are required")
)

type RatingService struct {
	repo repository.RatingRepository
}

func NewRatingService(repo repository.RatingRepository) *RatingService {
	return &RatingService{repo: repo}
}

// SubmitRating validates and persists a menu-item rating.
func (s *RatingService) SubmitRating(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	if rating.UserID <= 0 || rating.MenuItemID <= 0 {
		return nil, ErrInvalidRater
	}
	if rating.Score < 1 || rating.Score > 5 {
		return nil, ErrInvalidRating
	}
	if len(rating.Comment) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	rating.CreatedAt = time.Now()
	if err := s.repo.Save(ctx, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// RatingsForMenuItem returns all ratings for a menu item, newest first,
// with their average score. An unrated item yields an empty list and a
// zero average.
func (s *RatingService) RatingsForMenuItem(ctx context.Context, menuItemID int64) ([]domain.Rating, float64, error) {
	ratings, err := s.repo.FindByMenuItem(ctx, menuItemID)
	if err != nil {
		return nil, 0, err
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}

	avg := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		avg = float64(sum) / float64(len(ratings))
	}
	return ratings, avg, nil
}
