package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/harukit/recipelog/backend/config"
	"github.com/harukit/recipelog/backend/internal/database"
	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/service"
)

// Ingredient sets the demo recipes are generated from.
var seedInputs = []struct {
	ingredients string
	condition   string
}{
	{"pork, cabbage, garlic", "under 20 minutes"},
	{"chicken thigh, onion, egg", "one pan only"},
	{"salmon, lemon, potato", "oven friendly"},
	{"tofu, ground pork, leek", "spicy"},
	{"eggplant, miso, rice", "vegetarian friendly"},
	{"shrimp, broccoli, butter", "low effort"},
	{"beef, bell pepper, soy sauce", "weeknight dinner"},
	{"mushroom, cream, pasta", "comfort food"},
}

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

	// Drafts are never touched here, so no Redis client is needed.
	llmService, err := service.NewLLMService(nil)
	if err != nil {
		log.Fatalf("Failed to initialize LLM service: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	token, err := authService.Register("Demo Chef", "demo@recipelog.local", "demo-password", "demochef")
	if errors.Is(err, service.ErrUserExists) {
		// Reruns reuse the existing demo account.
		token, err = authService.Login("demo@recipelog.local", "demo-password")
	}
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	claims, err := authService.ValidateToken(token)
	if err != nil {
		log.Fatalf("Failed to resolve demo user: %v", err)
	}

	recipeService := service.NewRecipeService(db)
	ctx := context.Background()

	for i, input := range seedInputs {
		content, err := llmService.GenerateRecipe(ctx, input.ingredients, "use what's at home", input.condition, "")
		if err != nil {
			log.Printf("Skipping seed %d: generation failed: %v", i+1, err)
			continue
		}

		var data service.RecipeData
		if err := json.Unmarshal([]byte(content), &data); err != nil {
			log.Printf("Skipping seed %d: bad recipe JSON: %v", i+1, err)
			continue
		}

		recipe := &models.Recipe{
			Title:       data.Title,
			CookingTime: data.CookingTime,
			Ingredients: data.Ingredients,
			Preparation: models.StringList(data.Preparation),
			Steps:       models.StringList(data.Steps),
			ChefComment: data.ChefComment,
			IsPublic:    true,
			UserID:      claims.UserID,
		}
		if _, err := recipeService.CreateRecipe(ctx, recipe); err != nil {
			log.Printf("Skipping seed %d: save failed: %v", i+1, err)
			continue
		}

		log.Printf("Seeded recipe %d/%d: %s", i+1, len(seedInputs), recipe.Title)
		time.Sleep(500 * time.Millisecond)
	}

	log.Println("Seeding complete")
}
