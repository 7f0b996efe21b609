package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/octobees/query-classifier/api/internal/config"
)

// ErrUpstreamUnavailable wraps every failure to obtain a completion from the model API.
var ErrUpstreamUnavailable = errors.New("upstream model unavailable")

// ChatCompleter sends a single user prompt to a chat model and returns the reply text.
// Implementations must be safe for concurrent use.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *rate.Limiter
}

// NewGroqClient builds a client from the model configuration. A nil client
// gets one with cfg.Timeout applied.
func NewGroqClient(client *http.Client, cfg config.ModelConfig) *GroqClient {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.Enabled() {
		every := cfg.RateLimit.Interval / time.Duration(cfg.RateLimit.Requests)
		limiter = rate.NewLimiter(rate.Every(every), cfg.RateLimit.Requests)
	}

	return &GroqClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: limiter,
	}
}

// Model returns the model identifier sent with each request.
func (c *GroqClient) Model() string {
	return c.model
}

// Complete posts prompt as the only user message and returns the first choice's content unmodified.
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: waiting for rate limiter: %w", ErrUpstreamUnavailable, err)
		}
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, resp.StatusCode, extractAPIError(resp.Body))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: could not decode response: %w", ErrUpstreamUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUpstreamUnavailable)
	}
	return out.Choices[0].Message.Content, nil
}

// extractAPIError pulls the message out of an OpenAI-style error body,
// falling back to the raw body text.
func extractAPIError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "model API returned an error"
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return strings.TrimSpace(string(data))
}

var _ ChatCompleter = (*GroqClient)(nil)
