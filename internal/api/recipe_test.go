package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harukit/recipelog/backend/internal/models"
	"github.com/harukit/recipelog/backend/internal/types"
)

func createRecipeViaAPI(t *testing.T, env *TestEnv, token, title string) models.Recipe {
	t.Helper()

	body := types.CreateRecipeRequest{
		Title:       title,
		CookingTime: "20 minutes",
		Ingredients: models.IngredientList{{Name: "pork", Amount: "200g"}},
		Preparation: models.StringList{"Mix the sauce"},
		Steps:       models.StringList{"Fry everything"},
		ChefComment: "Keep the heat high.",
	}

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Recipe
}

func TestCreateRecipeEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	userID, token := CreateTestUserAndToken(t, env)

	recipe := createRecipeViaAPI(t, env, token, "Ginger Pork")
	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, userID, recipe.UserID)
	assert.Equal(t, "Ginger Pork", recipe.Title)
}

func TestCreateRecipeFromDraft(t *testing.T) {
	env := SetupTestEnv(t)
	userID, token := CreateTestUserAndToken(t, env)
	draft := env.LLMService.SeedDraft(userID)

	body := map[string]interface{}{
		"draft_id": draft.ID,
		"memo":     "saved from draft",
	}
	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Recipe models.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, draft.Title, resp.Recipe.Title)
	assert.Equal(t, "saved from draft", resp.Recipe.Memo)
	assert.Len(t, resp.Recipe.Ingredients, len(draft.Ingredients))

	// Promotion consumes the draft.
	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/llm/drafts/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeFromForeignDraft(t *testing.T) {
	env := SetupTestEnv(t)
	otherID, _ := CreateTestUserAndToken(t, env)
	draft := env.LLMService.SeedDraft(otherID)

	_, token := CreateTestUserAndToken(t, env)
	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/recipes", token, map[string]string{"draft_id": draft.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeRequiresTitle(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/recipes", token, map[string]string{"memo": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecipesEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	createRecipeViaAPI(t, env, token, "Ginger Pork")
	createRecipeViaAPI(t, env, token, "Fried Rice")

	// Another user's recipes stay out of the listing.
	_, otherToken := CreateTestUserAndToken(t, env)
	createRecipeViaAPI(t, env, otherToken, "Other Stew")

	w := PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 2)

	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes?q=ginger", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Ginger Pork", resp.Recipes[0].Title)
}

func TestGetAndDeleteRecipeEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)
	recipe := createRecipeViaAPI(t, env, token, "Mapo Tofu")

	w := PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	_, otherToken := CreateTestUserAndToken(t, env)
	w = PerformRequest(env.Router, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequest(env.Router, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportPDFEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)
	recipe := createRecipeViaAPI(t, env, token, "Printable Dish")

	w := PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String()+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestUploadImageWithoutStorage(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)
	recipe := createRecipeViaAPI(t, env, token, "Photo Dish")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "dish.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	// The test environment runs without object storage.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestFeedEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	body := types.CreateRecipeRequest{Title: "Shared Dish", IsPublic: true}
	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/recipes", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	createRecipeViaAPI(t, env, token, "Private Dish")

	// The feed needs no token.
	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/feed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Shared Dish", resp.Recipes[0].Title)
}

func TestRecipesRequireAuth(t *testing.T) {
	env := SetupTestEnv(t)

	w := PerformRequest(env.Router, http.MethodGet, "/api/v1/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
