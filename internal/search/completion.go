package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CompletionClient calls an OpenAI-compatible chat completion endpoint to
// translate natural language into SQL.
type CompletionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewCompletionClient creates a client for the configured endpoint.
func NewCompletionClient(baseURL, apiKey, model string, timeout time.Duration) *CompletionClient {
	return &CompletionClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateSQL asks the model for a SELECT statement answering the query.
func (c *CompletionClient) GenerateSQL(ctx context.Context, query string) (string, error) {
	if c == nil || c.baseURL == "" {
		return "", fmt.Errorf("completion endpoint not configured")
	}

	system := fmt.Sprintf(`You are a SQL expert. Convert the following natural language query into a SQL query for a supply chain management system.
Use the following database schema information:

%s

Only return the SQL query without any explanations or markdown formatting.
The query must be a SELECT statement for security reasons.`, schemaContext)

	body, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: "Convert to SQL: " + query},
		},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion call failed: status %d body %s", resp.StatusCode, string(raw))
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response had no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
