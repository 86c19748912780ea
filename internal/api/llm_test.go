package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harukit/recipelog/backend/internal/service"
)

func TestGenerateEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	body := map[string]string{
		"ingredients": "pork, ginger, onion",
		"mode":        "use what's at home",
		"condition":   "under 20 minutes",
		"memo":        "weeknight dinner",
	}

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/llm/generate", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Draft service.RecipeDraft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Draft.ID)
	assert.Equal(t, "Ginger Pork", resp.Draft.Title)
	assert.Equal(t, "weeknight dinner", resp.Draft.Memo)
	assert.Len(t, resp.Draft.Ingredients, 2)
}

func TestGenerateEndpointRequiresAuth(t *testing.T) {
	env := SetupTestEnv(t)

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/llm/generate", "", map[string]string{
		"ingredients": "pork",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateEndpointRequiresIngredients(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/llm/generate", token, map[string]string{
		"mode": "use what's at home",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpointRateLimited(t *testing.T) {
	env := SetupTestEnv(t)
	_, token := CreateTestUserAndToken(t, env)

	body := map[string]string{"ingredients": "pork"}
	for i := 0; i < 10; i++ {
		w := PerformRequest(env.Router, http.MethodPost, "/api/v1/llm/generate", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(env.Router, http.MethodPost, "/api/v1/llm/generate", token, body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGetDraftEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	userID, token := CreateTestUserAndToken(t, env)
	draft := env.LLMService.SeedDraft(userID)

	w := PerformRequest(env.Router, http.MethodGet, "/api/v1/llm/drafts/"+draft.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Draft service.RecipeDraft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, draft.Title, resp.Draft.Title)

	// Other users' drafts are invisible.
	_, otherToken := CreateTestUserAndToken(t, env)
	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/llm/drafts/"+draft.ID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDraftEndpoint(t *testing.T) {
	env := SetupTestEnv(t)
	userID, token := CreateTestUserAndToken(t, env)
	draft := env.LLMService.SeedDraft(userID)

	w := PerformRequest(env.Router, http.MethodDelete, "/api/v1/llm/drafts/"+draft.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(env.Router, http.MethodGet, "/api/v1/llm/drafts/"+draft.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
