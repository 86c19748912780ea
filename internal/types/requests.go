package types

import "github.com/harukit/recipelog/backend/internal/models"

// GenerateRecipeRequest represents the request body for LLM recipe generation
type GenerateRecipeRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`
	Mode        string `json:"mode"`
	Condition   string `json:"condition"`
	Memo        string `json:"memo"`
}

// CreateRecipeRequest represents the request body for saving a recipe.
// Either DraftID or the full recipe fields must be supplied.
type CreateRecipeRequest struct {
	DraftID     string                `json:"draft_id"`
	Title       string                `json:"title"`
	CookingTime string                `json:"cooking_time"`
	Ingredients models.IngredientList `json:"ingredients"`
	Preparation models.StringList     `json:"preparation"`
	Steps       models.StringList     `json:"steps"`
	ChefComment string                `json:"chef_comment"`
	Memo        string                `json:"memo"`
	IsPublic    bool                  `json:"is_public"`
}

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
