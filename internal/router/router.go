package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/api"
	"github.com/harukit/recipelog/backend/internal/middleware"
	"github.com/harukit/recipelog/backend/internal/service"
)

// SetupRouter builds the gin engine with CORS and all API routes wired.
// redisClient and imageService may be nil when those backends are not
// configured.
func SetupRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	authService service.IAuthService,
	llmService service.ILLMService,
	imageService service.IImageService,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	api.RegisterRoutes(router, db, redisClient, authService, llmService, imageService)

	return router
}
