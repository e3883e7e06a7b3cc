package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"interview-service/internal/models"
)

// Completer is the completion provider contract: an ordered list of
// role-tagged messages in, generated text out. Implementations may fail
// transiently; the Gateway owns retries and fallback.
type Completer interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

// NewClient builds a client with a per-attempt request timeout.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
	TopP        float64                 `json:"top_p"`
	Stream      bool                    `json:"stream"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

// Complete sends one chat-completions request and returns the generated text.
func (c *Client) Complete(ctx context.Context, messages []models.Message) (string, error) {
	request := chatCompletionRequest{
		Model:       c.Model,
		Messages:    make([]chatCompletionMessage, 0, len(messages)),
		Temperature: 0.7,
		MaxTokens:   600,
		TopP:        0.9,
		Stream:      false,
	}
	for _, m := range messages {
		request.Messages = append(request.Messages, chatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}
