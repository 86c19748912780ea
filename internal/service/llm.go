package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/harukit/recipelog/backend/internal/models"
)

// RecipeData represents the structure of a recipe as returned by the LLM
type RecipeData struct {
	Title       string                `json:"title"`
	CookingTime string                `json:"cooking_time"`
	Ingredients models.IngredientList `json:"ingredients"`
	Preparation []string              `json:"preparation"`
	Steps       []string              `json:"steps"`
	ChefComment string                `json:"chef_comment"`
}

// RecipeDraft is a generated recipe held in Redis until the user saves or
// discards it.
type RecipeDraft struct {
	ID          string                `json:"id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	Title       string                `json:"title"`
	CookingTime string                `json:"cooking_time"`
	Ingredients models.IngredientList `json:"ingredients"`
	Preparation []string              `json:"preparation"`
	Steps       []string              `json:"steps"`
	ChefComment string                `json:"chef_comment"`
	Memo        string                `json:"memo"`
	ImageURL    string                `json:"image_url"`
	UserID      string                `json:"user_id"`
}

const draftTTL = 24 * time.Hour

// LLMService generates recipes through an OpenAI-compatible chat-completions
// endpoint and manages recipe drafts.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	redis  *redis.Client
}

// NewLLMService creates a new LLMService instance. The API key comes from
// OPENAI_API_KEY or, for Docker secrets, a file named by OPENAI_API_KEY_FILE.
func NewLLMService(redisClient *redis.Client) (*LLMService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
		redis:  redisClient,
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat-completions API
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

const recipeSystemPrompt = `You are a professional at efficient home cooking. The user wants a quick, tasty meal from the ingredients on hand. Respond ONLY with JSON in this exact structure:
{
    "title": "Dish name",
    "cooking_time": "Estimated time",
    "ingredients": [ {"name": "Ingredient", "amount": "Quantity"} ],
    "preparation": [ "Prep step 1", "Prep step 2" ],
    "steps": [ "Step 1", "Step 2" ],
    "chef_comment": "Tips and pointers"
}

Rules:
1. The ingredient list MUST include every seasoning with its amount.
2. In preparation, combine the seasonings into a single pre-mixed sauce where possible.
3. Each step must be concrete enough to follow without thinking.
4. Output JSON only, no extra commentary.`

// GenerateRecipe asks the model for a recipe built from the given ingredient
// list, shopping mode and free-form conditions, and returns the raw JSON
// content of the completion.
func (s *LLMService) GenerateRecipe(ctx context.Context, ingredients, mode, condition, memo string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Ingredients: %s\n", ingredients)
	if mode != "" {
		fmt.Fprintf(&b, "Mode: %s\n", mode)
	}
	if condition != "" {
		fmt.Fprintf(&b, "Conditions: %s\n", condition)
	}
	if memo != "" {
		fmt.Fprintf(&b, "Note to self: %s\n", memo)
	}

	messages := []Message{
		{Role: "system", Content: recipeSystemPrompt},
		{Role: "user", Content: b.String()},
	}

	reqBody := Request{
		Model:    s.model,
		Messages: messages,
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// SaveDraft saves a recipe draft to Redis
func (s *LLMService) SaveDraft(ctx context.Context, draft *RecipeDraft) error {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	key := fmt.Sprintf("recipe:draft:%s", draft.ID)
	if err := s.redis.Set(ctx, key, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}

	return nil
}

// GetDraft retrieves a recipe draft from Redis
func (s *LLMService) GetDraft(ctx context.Context, id string) (*RecipeDraft, error) {
	key := fmt.Sprintf("recipe:draft:%s", id)
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft RecipeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &draft, nil
}

// UpdateDraft updates a recipe draft in Redis
func (s *LLMService) UpdateDraft(ctx context.Context, draft *RecipeDraft) error {
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	key := fmt.Sprintf("recipe:draft:%s", draft.ID)
	if err := s.redis.Set(ctx, key, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to update draft in Redis: %w", err)
	}

	return nil
}

// DeleteDraft removes a recipe draft from Redis
func (s *LLMService) DeleteDraft(ctx context.Context, id string) error {
	key := fmt.Sprintf("recipe:draft:%s", id)
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}

	return nil
}
