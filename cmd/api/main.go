package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/harukit/recipelog/backend/config"
	"github.com/harukit/recipelog/backend/internal/database"
	"github.com/harukit/recipelog/backend/internal/router"
	"github.com/harukit/recipelog/backend/internal/server"
	"github.com/harukit/recipelog/backend/internal/service"
)

func main() {
	if config.IsDevelopment() {
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	llmService, err := service.NewLLMService(redisClient)
	if err != nil {
		log.Fatalf("Failed to initialize LLM service: %v", err)
	}

	// Object storage is optional; without it photo uploads return 503.
	var imageService service.IImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("Warning: S3 not configured, image uploads disabled: %v", err)
	} else {
		if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("Warning: failed to apply bucket policy: %v", err)
		}
		imageService = service.NewImageService(s3Config)
	}

	engine := router.SetupRouter(db, redisClient, authService, llmService, imageService)

	srv := server.New(cfg.ServerAddr(), engine)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
