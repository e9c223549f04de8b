package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prizma-news/prizma/internal/logging"
)

// Summarizer produces a neutral recap for one entry. Implementations must
// treat failure as non-fatal; the builder falls back to the heuristic.
type Summarizer interface {
	Available() bool
	Summarize(ctx context.Context, title, excerpt, lang string) (*Summary, error)
}

// Summary is a neutral summarization of one entry.
type Summary struct {
	Recap    string   `json:"recap"`
	MainIdea string   `json:"main_idea"`
	Tags     []string `json:"tags"`
}

const (
	openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel    = "openai/gpt-4o-mini"
)

const systemPrompt = "You are a neutral summarizer. Produce a concise, neutral recap and a main idea. " +
	"Return JSON with keys: recap, main_idea, tags (array of 1-4 short tags). " +
	"Do not add opinions."

// OpenRouterSummarizer calls the OpenRouter chat completions API with a
// JSON response format.
type OpenRouterSummarizer struct {
	apiKey string
	model  string
	client *http.Client
}

// NewOpenRouterSummarizer creates a summarizer. An empty API key yields an
// unavailable summarizer, which the builder silently skips.
func NewOpenRouterSummarizer(apiKey string) *OpenRouterSummarizer {
	return &OpenRouterSummarizer{
		apiKey: apiKey,
		model:  openRouterModel,
		client: &http.Client{Timeout: 25 * time.Second},
	}
}

func (s *OpenRouterSummarizer) Available() bool {
	return s.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize asks the model for a neutral recap of one entry.
func (s *OpenRouterSummarizer) Summarize(ctx context.Context, title, excerpt, lang string) (*Summary, error) {
	if !s.Available() {
		return nil, fmt.Errorf("openrouter summarizer not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Language: %s\nTitle: %s\nExcerpt: %s", lang, title, excerpt)},
		},
		Temperature: 0.3,
	}
	reqBody.ResponseFormat.Type = "json_object"

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterEndpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logging.Error("Summarizer API error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	var summary Summary
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &summary); err != nil {
		return nil, fmt.Errorf("parse summary content: %w", err)
	}
	if summary.Recap == "" {
		return nil, fmt.Errorf("summary has no recap")
	}
	return &summary, nil
}
