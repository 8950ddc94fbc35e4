package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.openai.com"
	requestTimeout = 30 * time.Second

	systemMessage = "You are an expert fitness and nutrition advisor. Provide helpful, personalized advice based on user data. Keep responses concise and actionable."

	fallbackAdvice = "Unable to generate AI insights at this time. Please try again later."
)

// InsightService is the bridge to the external chat-completion provider.
// Every failure is absorbed into a fallback Insight; Generate never returns
// an error.
type InsightService struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewInsightService(apiKey, model string) *InsightService {
	return &InsightService{APIKey: apiKey, Model: model}
}

// Generate assembles a prompt for the request type, dispatches it with a
// fresh session id, and wraps the provider's text response. On any provider
// failure it returns the fixed fallback advice with Error set.
func (s *InsightService) Generate(ctx context.Context, userID string, req *domain.InsightRequest) domain.Insight {
	userData := req.UserData
	if userData == nil {
		userData = map[string]interface{}{}
	}
	userData["user_id"] = userID

	prompt := buildPrompt(req.RequestType, userData)

	advice, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("AI insight generation failed: %v", err)
		return domain.Insight{
			Type:        req.RequestType,
			Advice:      fallbackAdvice,
			Error:       true,
			GeneratedAt: time.Now().UTC(),
		}
	}

	return domain.Insight{
		Type:        req.RequestType,
		Advice:      advice,
		GeneratedAt: time.Now().UTC(),
	}
}

func buildPrompt(requestType string, userData map[string]interface{}) string {
	switch requestType {
	case "workout_recommendation":
		return fmt.Sprintf(`Based on this fitness data, recommend a personalized workout plan:
Recent Exercises: %s
Goals: %s
Current Progress: %s

Provide 3-5 specific exercise recommendations with sets/reps/duration.`,
			jsonField(userData, "recent_exercises"),
			jsonField(userData, "goals"),
			jsonField(userData, "progress"))

	case "nutrition_advice":
		return fmt.Sprintf(`Based on this nutrition data, provide personalized dietary advice:
Recent Meals: %s
Goals: %s
Current Progress: %s

Suggest meal improvements and macro adjustments.`,
			jsonField(userData, "recent_nutrition"),
			jsonField(userData, "goals"),
			jsonField(userData, "progress"))

	case "progress_analysis":
		return fmt.Sprintf(`Analyze this fitness progress data and provide insights:
Exercise History: %s
Nutrition History: %s
Progress Metrics: %s
Goals: %s

Highlight trends, achievements, and areas for improvement.`,
			jsonField(userData, "exercise_history"),
			jsonField(userData, "nutrition_history"),
			jsonField(userData, "progress_metrics"),
			jsonField(userData, "goals"))

	default:
		raw, _ := json.Marshal(userData)
		return fmt.Sprintf("Provide general fitness advice based on this data: %s", raw)
	}
}

func jsonField(data map[string]interface{}, key string) string {
	v, ok := data[key]
	if !ok {
		return "[]"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *InsightService) complete(ctx context.Context, prompt string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("missing AI provider API key")
	}

	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body := map[string]interface{}{
		"model": s.Model,
		"user":  "fitness_ai_" + uuid.NewString(),
		"messages": []map[string]string{
			{"role": "system", "content": systemMessage},
			{"role": "user", "content": prompt},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat provider returned %d: %s", resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat provider returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
