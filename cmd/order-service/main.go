package main

import (
	"context"
	"log"
	"os"
	"time"

	controllers "food-delivery/internal/controllers/http"
	"food-delivery/internal/infra"
	"food-delivery/internal/infra/email"
	inframongo "food-delivery/internal/infra/mongo"
	"food-delivery/internal/infra/rabbitmq"
	infraredis "food-delivery/internal/infra/redis"
	mongorepo "food-delivery/internal/repository/mongo"
	redisrepo "food-delivery/internal/repository/redis"
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
	if err := mongorepo.EnsureOrderIndexes(context.Background(), db); err != nil {
		log.Fatalf("mongo: ensure indexes: %v", err)
	}

	redisClient := infraredis.NewRedisFromEnv()
	defer redisClient.Close()

	cartStore := redisrepo.NewCartStore(redisClient)
	orderRepo := mongorepo.NewOrderRepository(db)

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		p, err := rabbitmq.NewPublisher(url, "order.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	cartService := services.NewCartService(cartStore)
	orderService := services.NewOrderService(orderRepo, cartStore, publisher)
	orderService.SetMailer(email.NewSendGridFromEnv())
	if userURL := os.Getenv("USER_SERVICE_URL"); userURL != "" {
		orderService.SetUserClient(infra.NewUserClient(userURL, 2*time.Second))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), controllers.CORS())

	handler := controllers.NewOrderHandler(cartService, orderService)
	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := infra.RunServer("order-service", r, port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
