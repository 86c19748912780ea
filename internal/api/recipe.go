package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/middleware"
	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/service"
	"github.com/harukit/recipelog/backend/internal/types"
)

const maxImageSize = 5 << 20 // 5 MB

// RecipeHandler handles saved-recipe requests
type RecipeHandler struct {
	recipeService service.IRecipeService
	llmService    service.ILLMService
	imageService  service.IImageService
	pdfService    service.IPDFService
	authService   service.IAuthService
}

// NewRecipeHandler creates a new RecipeHandler instance. The image service
// may be nil when object storage is not configured.
func NewRecipeHandler(recipeService service.IRecipeService, llmService service.ILLMService, imageService service.IImageService, pdfService service.IPDFService, authService service.IAuthService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		llmService:    llmService,
		imageService:  imageService,
		pdfService:    pdfService,
		authService:   authService,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/feed", h.Feed)

	recipes := router.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(h.authService))
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.GET("/:id/pdf", h.ExportPDF)
		recipes.POST("/:id/image", h.UploadImage)
	}
}

// ListRecipes returns the user's recipe log, optionally filtered by the q
// query parameter.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		log.Printf("Failed to list recipes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// CreateRecipe saves a recipe to the user's log, either by promoting a draft
// or from a full recipe payload.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipe := &models.Recipe{
		Title:       req.Title,
		CookingTime: req.CookingTime,
		Ingredients: req.Ingredients,
		Preparation: req.Preparation,
		Steps:       req.Steps,
		ChefComment: req.ChefComment,
		Memo:        req.Memo,
		IsPublic:    req.IsPublic,
		UserID:      userID,
	}

	if req.DraftID != "" {
		draft, err := h.llmService.GetDraft(c.Request.Context(), req.DraftID)
		if err != nil || draft.UserID != userID.String() {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}

		recipe.Title = draft.Title
		recipe.CookingTime = draft.CookingTime
		recipe.Ingredients = draft.Ingredients
		recipe.Preparation = models.StringList(draft.Preparation)
		recipe.Steps = models.StringList(draft.Steps)
		recipe.ChefComment = draft.ChefComment
		recipe.ImageURL = draft.ImageURL
		if recipe.Memo == "" {
			recipe.Memo = draft.Memo
		}
	}

	if recipe.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		log.Printf("Failed to create recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recipe"})
		return
	}

	if req.DraftID != "" {
		if err := h.llmService.DeleteDraft(c.Request.Context(), req.DraftID); err != nil {
			log.Printf("Failed to delete promoted draft %s: %v", req.DraftID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": created})
}

// GetRecipe returns one of the user's saved recipes.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, recipeID, ok := h.recipeParams(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// DeleteRecipe removes one of the user's saved recipes.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, recipeID, ok := h.recipeParams(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		log.Printf("Failed to delete recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// ExportPDF renders one of the user's recipes as a downloadable PDF.
func (h *RecipeHandler) ExportPDF(c *gin.Context) {
	userID, recipeID, ok := h.recipeParams(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	data, err := h.pdfService.RenderRecipe(recipe)
	if err != nil {
		log.Printf("Failed to render PDF for recipe %s: %v", recipeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recipe-%s.pdf", recipeID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// UploadImage attaches a photo to one of the user's recipes.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	userID, recipeID, ok := h.recipeParams(c)
	if !ok {
		return
	}

	if _, err := h.recipeService.GetRecipe(c.Request.Context(), userID, recipeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
			return
		}
		log.Printf("Failed to upload image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	if err := h.recipeService.SetImageURL(c.Request.Context(), userID, recipeID, url); err != nil {
		log.Printf("Failed to record image URL: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// Feed returns the latest publicly shared recipes. No authentication needed.
func (h *RecipeHandler) Feed(c *gin.Context) {
	recipes, err := h.recipeService.RecentPublicRecipes(c.Request.Context(), 0)
	if err != nil {
		log.Printf("Failed to fetch public feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// recipeParams extracts the viewer and the recipe ID from the request,
// writing the error response itself when either is missing.
func (h *RecipeHandler) recipeParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, recipeID, true
}
