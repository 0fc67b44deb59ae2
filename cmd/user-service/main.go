package main

import (
	"log"
	"os"
	"time"

	controllers "food-delivery/internal/controllers/http"
	"food-delivery/internal/infra"
	inframysql "food-delivery/internal/infra/mysql"
	mysqlrepo "food-delivery/internal/repository/mysql"
	"food-delivery/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	db, err := inframysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	defer sqlDB.Close()

	repo := mysqlrepo.NewUserRepository(db)
	userService := services.NewUserService(repo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), controllers.CORS())

	handler := controllers.NewUserHandler(userService)
	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	if err := infra.RunServer("user-service", r, port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
