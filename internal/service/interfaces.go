package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/types"
)

// ILLMService defines the interface for recipe generation and draft storage
type ILLMService interface {
	GenerateRecipe(ctx context.Context, ingredients, mode, condition, memo string) (string, error)
	SaveDraft(ctx context.Context, draft *RecipeDraft) error
	GetDraft(ctx context.Context, id string) (*RecipeDraft, error)
	UpdateDraft(ctx context.Context, draft *RecipeDraft) error
	DeleteDraft(ctx context.Context, id string) error
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(name, email, password, username string) (string, error)
	Login(email, password string) (string, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for saved-recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error
	ListRecipes(ctx context.Context, userID uuid.UUID, search string) ([]models.Recipe, error)
	RecentPublicRecipes(ctx context.Context, limit int) ([]models.Recipe, error)
	SetImageURL(ctx context.Context, userID, id uuid.UUID, url string) error
	CookingEvents(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

// IImageService defines the interface for photo attachment storage
type IImageService interface {
	UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error)
}

// IPDFService defines the interface for recipe document export
type IPDFService interface {
	RenderRecipe(recipe *models.Recipe) ([]byte, error)
}
