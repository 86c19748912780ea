package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harukit/recipelog/backend/internal/middleware"
	"github.com/harukit/recipelog/backend/internal/service"
	"github.com/harukit/recipelog/backend/internal/types"
)

// LLMHandler handles recipe generation and draft requests
type LLMHandler struct {
	llmService  service.ILLMService
	authService service.IAuthService
	limiter     *middleware.RateLimiter
}

// NewLLMHandler creates a new LLMHandler instance. The rate limiter may be
// nil, in which case generation is not throttled.
func NewLLMHandler(llmService service.ILLMService, authService service.IAuthService, limiter *middleware.RateLimiter) *LLMHandler {
	return &LLMHandler{
		llmService:  llmService,
		authService: authService,
		limiter:     limiter,
	}
}

// RegisterRoutes registers the LLM routes
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	llm := router.Group("/llm")
	llm.Use(middleware.AuthMiddleware(h.authService))
	{
		if h.limiter != nil {
			llm.POST("/generate", h.limiter.RateLimitMiddleware(), h.Generate)
		} else {
			llm.POST("/generate", h.Generate)
		}
		llm.GET("/drafts/:id", h.GetDraft)
		llm.DELETE("/drafts/:id", h.DeleteDraft)
	}
}

// Generate asks the model for a recipe and stores the result as a draft the
// user can review before saving.
func (h *LLMHandler) Generate(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	content, err := h.llmService.GenerateRecipe(c.Request.Context(), req.Ingredients, req.Mode, req.Condition, req.Memo)
	if err != nil {
		log.Printf("Failed to generate recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipe"})
		return
	}

	var data service.RecipeData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		log.Printf("Failed to unmarshal recipe JSON: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse generated recipe"})
		return
	}

	draft := &service.RecipeDraft{
		Title:       data.Title,
		CookingTime: data.CookingTime,
		Ingredients: data.Ingredients,
		Preparation: data.Preparation,
		Steps:       data.Steps,
		ChefComment: data.ChefComment,
		Memo:        req.Memo,
		UserID:      userID.String(),
	}

	if err := h.llmService.SaveDraft(c.Request.Context(), draft); err != nil {
		log.Printf("Failed to save draft: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetDraft returns one of the user's pending drafts.
func (h *LLMHandler) GetDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	draft, err := h.llmService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil || draft.UserID != userID.String() {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// DeleteDraft discards one of the user's pending drafts.
func (h *LLMHandler) DeleteDraft(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	draft, err := h.llmService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil || draft.UserID != userID.String() {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}

	if err := h.llmService.DeleteDraft(c.Request.Context(), draft.ID); err != nil {
		log.Printf("Failed to delete draft: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}

// currentUserID reads the authenticated user's ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}
