package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/harukit/recipelog/backend/internal/service"
	"github.com/harukit/recipelog/backend/internal/testhelpers"
)

// TestEnv holds the wired test router plus the pieces tests poke directly.
type TestEnv struct {
	Router      *gin.Engine
	DB          *gorm.DB
	AuthService *service.AuthService
	LLMService  *MockLLMService
}

// SetupTestEnv wires a full router against an in-memory database, a
// miniredis-backed rate limiter and a canned LLM service.
func SetupTestEnv(t *testing.T) *TestEnv {
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	authService := service.NewAuthService(db, "test-secret")
	llmService := NewMockLLMService()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, db, redisClient, authService, llmService, nil)

	return &TestEnv{
		Router:      router,
		DB:          db,
		AuthService: authService,
		LLMService:  llmService,
	}
}

// CreateTestUserAndToken registers a user through the auth service and
// returns their ID and a valid JWT token.
func CreateTestUserAndToken(t *testing.T, env *TestEnv) (uuid.UUID, string) {
	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("testuser+%s@example.com", suffix)

	token, err := env.AuthService.Register("Test User", email, "testpassword123", "testuser_"+suffix)
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}

	claims, err := env.AuthService.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate test token: %v", err)
	}

	return claims.UserID, token
}

// PerformRequest is a helper function to make HTTP requests in tests
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}

const mockRecipeJSON = `{"title":"Ginger Pork","cooking_time":"20 minutes","ingredients":[{"name":"pork","amount":"200g"},{"name":"ginger","amount":"1 knob"}],"preparation":["Grate the ginger"],"steps":["Fry the pork","Add the sauce"],"chef_comment":"High heat, short time."}`

// MockLLMService implements service.ILLMService with canned output and an
// in-memory draft store.
type MockLLMService struct {
	drafts      map[string]*service.RecipeDraft
	GenerateErr error
}

func NewMockLLMService() *MockLLMService {
	return &MockLLMService{drafts: make(map[string]*service.RecipeDraft)}
}

func (m *MockLLMService) GenerateRecipe(ctx context.Context, ingredients, mode, condition, memo string) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return mockRecipeJSON, nil
}

func (m *MockLLMService) SaveDraft(ctx context.Context, draft *service.RecipeDraft) error {
	draft.ID = uuid.New().String()
	m.drafts[draft.ID] = draft
	return nil
}

func (m *MockLLMService) GetDraft(ctx context.Context, id string) (*service.RecipeDraft, error) {
	if draft, exists := m.drafts[id]; exists {
		return draft, nil
	}
	return nil, fmt.Errorf("draft not found")
}

func (m *MockLLMService) UpdateDraft(ctx context.Context, draft *service.RecipeDraft) error {
	m.drafts[draft.ID] = draft
	return nil
}

func (m *MockLLMService) DeleteDraft(ctx context.Context, id string) error {
	delete(m.drafts, id)
	return nil
}

// SeedDraft plants a draft directly in the store, bypassing generation.
func (m *MockLLMService) SeedDraft(userID uuid.UUID) *service.RecipeDraft {
	var data service.RecipeData
	_ = json.Unmarshal([]byte(mockRecipeJSON), &data)

	draft := &service.RecipeDraft{
		ID:          uuid.New().String(),
		Title:       data.Title,
		CookingTime: data.CookingTime,
		Ingredients: data.Ingredients,
		Preparation: data.Preparation,
		Steps:       data.Steps,
		ChefComment: data.ChefComment,
		UserID:      userID.String(),
	}
	m.drafts[draft.ID] = draft
	return draft
}
