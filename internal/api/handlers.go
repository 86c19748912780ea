package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/middleware"
	"github.com/harukit/recipelog/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "RecipeLog API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes. The LLM and image services are
// injected so tests can substitute fakes; redisClient may be nil, which
// disables generation rate limiting.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, authService service.IAuthService, llmService service.ILLMService, imageService service.IImageService) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	recipeService := service.NewRecipeService(db)
	statsService := service.NewStatsService(recipeService)
	pdfService := service.NewPDFService()

	var generationLimiter *middleware.RateLimiter
	if redisClient != nil {
		generationLimiter = middleware.NewGenerationRateLimiter(redisClient)
	}

	authHandler := NewAuthHandler(authService)
	llmHandler := NewLLMHandler(llmService, authService, generationLimiter)
	recipeHandler := NewRecipeHandler(recipeService, llmService, imageService, pdfService, authService)
	statsHandler := NewStatsHandler(statsService, authService)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	llmHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	statsHandler.RegisterRoutes(v1)
}
