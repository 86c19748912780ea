package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/harukit/recipelog/backend/config"
	"github.com/harukit/recipelog/backend/internal/database"
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
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations complete")
}
