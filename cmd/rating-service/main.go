package main

import (
	"context"
	"log"
	"os"

	controllers "food-delivery/internal/controllers/http"
	"food-delivery/internal/infra"
	inframongo "food-delivery/internal/infra/mongo"
	mongorepo "food-delivery/internal/repository/mongo"
	"food-delivery/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	mongoClient, err := inframongo.NewMongoFromEnv()
	if err != nil {
		log.Fatalf("mongo: connect: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("mongo: disconnect: %v", err)
		}
	}()

	db := inframongo.DatabaseFromEnv(mongoClient)
	if err := mongorepo.EnsureRatingIndexes(context.Background(), db); err != nil {
		log.Fatalf("mongo: ensure indexes: %v", err)
	}

	repo := mongorepo.NewRatingRepository(db)
	ratingService := services.NewRatingService(repo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), controllers.CORS())

	handler := controllers.NewRatingHandler(ratingService)
	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	if err := infra.RunServer("rating-service", r, port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
