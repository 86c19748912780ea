package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/service"
	"github.com/harukit/recipelog/backend/internal/testhelpers"
)

func newRecipe(userID uuid.UUID, title string) *models.Recipe {
	return &models.Recipe{
		Title:       title,
		CookingTime: "20 minutes",
		Ingredients: models.IngredientList{{Name: "pork", Amount: "200g"}},
		Preparation: models.StringList{"Mix the sauce"},
		Steps:       models.StringList{"Fry everything"},
		ChefComment: "Keep the heat high.",
		UserID:      userID,
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateRecipe(ctx, newRecipe(userID, "Ginger Pork"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetRecipe(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ginger Pork", got.Title)
	assert.Equal(t, models.IngredientList{{Name: "pork", Amount: "200g"}}, got.Ingredients)

	// Another user must not see the recipe.
	_, err = svc.GetRecipe(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateRecipe(ctx, newRecipe(userID, "Mapo Tofu"))
	require.NoError(t, err)

	// Deleting as a different user must not touch the row.
	err = svc.DeleteRecipe(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.DeleteRecipe(ctx, userID, created.ID))

	_, err = svc.GetRecipe(ctx, userID, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListRecipes(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	for _, title := range []string{"Ginger Pork", "Fried Rice", "Pork Curry"} {
		_, err := svc.CreateRecipe(ctx, newRecipe(userID, title))
		require.NoError(t, err)
	}
	_, err := svc.CreateRecipe(ctx, newRecipe(uuid.New(), "Someone Else's Stew"))
	require.NoError(t, err)

	all, err := svc.ListRecipes(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := svc.ListRecipes(ctx, userID, "pork")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, r := range matched {
		assert.Contains(t, []string{"Ginger Pork", "Pork Curry"}, r.Title)
	}

	none, err := svc.ListRecipes(ctx, userID, "sushi")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListRecipesSearchesMemo(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	r := newRecipe(userID, "Plain Omelette")
	r.Memo = "for tomorrow's lunchbox"
	_, err := svc.CreateRecipe(ctx, r)
	require.NoError(t, err)

	matched, err := svc.ListRecipes(ctx, userID, "lunchbox")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Plain Omelette", matched[0].Title)
}

func TestRecentPublicRecipes(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		r := newRecipe(uuid.New(), "Public Dish")
		r.IsPublic = true
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := svc.CreateRecipe(ctx, r)
		require.NoError(t, err)
	}
	_, err := svc.CreateRecipe(ctx, newRecipe(uuid.New(), "Private Dish"))
	require.NoError(t, err)

	feed, err := svc.RecentPublicRecipes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, feed, 5)
	for i, r := range feed {
		assert.Equal(t, "Public Dish", r.Title)
		if i > 0 {
			assert.False(t, r.CreatedAt.After(feed[i-1].CreatedAt))
		}
	}
}

func TestSetImageURL(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateRecipe(ctx, newRecipe(userID, "Photo Dish"))
	require.NoError(t, err)

	err = svc.SetImageURL(ctx, uuid.New(), created.ID, "https://example.com/nope.jpg")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.SetImageURL(ctx, userID, created.ID, "https://example.com/dish.jpg"))

	got, err := svc.GetRecipe(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/dish.jpg", got.ImageURL)
}

func TestCookingEvents(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateRecipe(ctx, newRecipe(userID, "Logged Dish"))
		require.NoError(t, err)
	}
	_, err := svc.CreateRecipe(ctx, newRecipe(uuid.New(), "Other User Dish"))
	require.NoError(t, err)

	times, err := svc.CookingEvents(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, times, 3)
}
