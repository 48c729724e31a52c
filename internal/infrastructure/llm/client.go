// Package llm integrates the generative-text provider: the HTTP client,
// the tolerant output parsers, and the provider-backed event sources.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"HistoryScanner/internal/ports"
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint     string
	model        string
	apiKey       string
	systemPrompt string
	httpClient   *http.Client
}

var _ ports.TextGenerator = (*Client)(nil)

// Config carries the provider connection settings.
type Config struct {
	Endpoint     string
	Model        string
	APIKey       string
	SystemPrompt string
}

// NewClient builds a provider client from configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		endpoint:     cfg.Endpoint,
		model:        cfg.Model,
		apiKey:       cfg.APIKey,
		systemPrompt: safePrompt(cfg.SystemPrompt),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Generate sends the prompt as a user message and returns the first
// completion's content.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("provider client is nil")
	}
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("provider client misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": c.systemPrompt},
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal provider payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("provider error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func safePrompt(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "You are a careful historian assistant that answers in the exact format requested."
	}
	return prompt
}
