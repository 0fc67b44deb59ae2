package mongo

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoFromEnv connects using MONGO_URI and verifies the connection
// with a ping. The caller owns the client and must Disconnect it.
func NewMongoFromEnv() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// DatabaseFromEnv returns the platform database, MONGO_DATABASE or the
// default "fooddelivery".
func DatabaseFromEnv(client *mongo.Client) *mongo.Database {
	name := os.Getenv("MONGO_DATABASE")
	if name == "" {
		name = "fooddelivery"
	}
	return client.Database(name)
}
