package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harukit/recipelog/backend/internal/models"
)

// RecipeService handles saved-recipe operations. Every query is scoped to
// the owning user except the public feed.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe persists a recipe for its owner, computing the embedding used
// for semantic search.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	recipe.Embedding = GenerateEmbedding(recipe.Title + " " + recipe.ChefComment)

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves one of the user's recipes by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe soft-deletes one of the user's recipes.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Recipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRecipes returns the user's recipes, newest first, optionally filtered
// by a search query. On Postgres the query orders by embedding distance; on
// other dialects it falls back to keyword matching.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, search string) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if search != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(search)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(chef_comment) LIKE ? OR LOWER(memo) LIKE ?", like, like, like)
		}
	} else {
		query = query.Order("created_at DESC")
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecentPublicRecipes returns the newest recipes whose owners opted into the
// public feed.
func (s *RecipeService) RecentPublicRecipes(ctx context.Context, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = 5
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetImageURL records the attachment URL on one of the user's recipes.
func (s *RecipeService) SetImageURL(ctx context.Context, userID, id uuid.UUID, url string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("image_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CookingEvents returns the save timestamps of the user's recipes, one per
// saved recipe, for the usage statistics calculator.
func (s *RecipeService) CookingEvents(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}
