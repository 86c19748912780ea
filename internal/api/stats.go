package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harukit/recipelog/backend/internal/middleware"
	"github.com/harukit/recipelog/backend/internal/service"
)

// StatsHandler handles usage-statistics requests
type StatsHandler struct {
	statsService *service.StatsService
	authService  service.IAuthService
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(statsService *service.StatsService, authService service.IAuthService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		authService:  authService,
	}
}

// RegisterRoutes registers the stats routes
func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	stats.Use(middleware.AuthMiddleware(h.authService))
	{
		stats.GET("/usage", h.GetUsage)
	}
}

// GetUsage returns the user's cooking statistics for the month of the
// optional date query parameter (YYYY-MM-DD), defaulting to today.
func (h *StatsHandler) GetUsage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var ref time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	usage, err := h.statsService.Usage(c.Request.Context(), userID, ref)
	if err != nil {
		log.Printf("Failed to compute usage stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, usage)
}
