package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/service"
)

func TestRenderRecipe(t *testing.T) {
	svc := service.NewPDFService()

	recipe := &models.Recipe{
		Title:       "Ginger Pork",
		CookingTime: "20 minutes",
		Ingredients: models.IngredientList{
			{Name: "pork", Amount: "200g"},
			{Name: "ginger", Amount: "1 knob"},
			{Name: "soy sauce", Amount: "2 tbsp"},
		},
		Preparation: models.StringList{"Grate the ginger and mix the sauce"},
		Steps:       models.StringList{"Fry the pork", "Add the sauce and coat"},
		ChefComment: "Do not overcook the pork.",
		Memo:        "weeknight staple",
	}

	data, err := svc.RenderRecipe(recipe)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderRecipeMinimal(t *testing.T) {
	svc := service.NewPDFService()

	// Memo, preparation and chef comment are all optional.
	data, err := svc.RenderRecipe(&models.Recipe{Title: "Toast"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
