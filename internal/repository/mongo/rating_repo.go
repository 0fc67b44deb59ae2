package mongo

import (
	"context"
	"log"

	"food-delivery/internal/domain"
	"food-delivery/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ratingRepo struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) repository.RatingRepository {
	return &ratingRepo{col: db.Collection("ratings")}
}

func EnsureRatingIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("ratings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "menuItemId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

func (r *ratingRepo) Save(ctx context.Context, rating *domain.Rating) error {
	res, err := r.col.InsertOne(ctx, rating)
	if err != nil {
		log.Printf("rating insert error: %v", err)
		return err
	}
	rating.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ratingRepo) FindByMenuItem(ctx context.Context, menuItemID int64) ([]domain.Rating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"menuItemId": menuItemID}, opts)
	if err != nil {
		log.Printf("rating list error: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []domain.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
