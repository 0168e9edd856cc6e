package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/nirmitsaini1024/Productathon-26/internal/config"
)

var ErrInvalidModel = errors.New("model is required")

// OpenRouterClient talks to OpenRouter's OpenAI-compatible chat API
// with a fixed model. One instruction in, one raw completion out.
type OpenRouterClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	retryCount int
	backoff    time.Duration
	logger     *slog.Logger
}

func NewOpenRouterClient(cfg config.OpenRouterConfig, httpClient *http.Client, logger *slog.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: httpClient,
		retryCount: 2,
		backoff:    500 * time.Millisecond,
		logger:     logger,
	}
}

// Complete sends the instruction as a single user message and returns
// the model's raw textual answer. Transient upstream failures are
// retried with linear backoff; the context cancels everything.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.model == "" {
		return "", ErrInvalidModel
	}

	requestBody := openRouterRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		answer, err := c.doRequest(ctx, requestBody)
		if err == nil {
			return answer, nil
		}
		if !shouldRetry(ctx, err) || attempt == c.retryCount {
			return "", err
		}
		lastErr = err
		if c.logger != nil {
			c.logger.Warn("openrouter retry",
				slog.Int("attempt", attempt+1),
				slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return "", &CompletionError{Retryable: true, Message: ctx.Err().Error()}
		case <-time.After(c.backoff * time.Duration(attempt+1)):
		}
	}
	return "", fmt.Errorf("openrouter request failed: %w", lastErr)
}

func (c *OpenRouterClient) doRequest(ctx context.Context, body openRouterRequest) (string, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/chat/completions", c.baseURL), bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures and timeouts are worth another attempt.
		return "", &CompletionError{Retryable: true, Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CompletionError{Retryable: true, Message: "read response: " + err.Error()}
	}

	if resp.StatusCode >= 300 {
		return "", classifyStatus(resp.StatusCode, string(bodyBytes))
	}

	var parsed openRouterResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", &CompletionError{Status: resp.StatusCode, Message: "decode response: " + err.Error()}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &CompletionError{Status: resp.StatusCode, Message: "empty response from model"}
	}
	return parsed.Choices[0].Message.Content, nil
}

// classifyStatus labels upstream failures: 5xx is transient, auth
// (401/403) and quota (402/429) are final, as is any other 4xx.
func classifyStatus(status int, body string) *CompletionError {
	return &CompletionError{
		Retryable: status >= 500,
		Status:    status,
		Message:   fmt.Sprintf("unexpected status %d: %s", status, body),
	}
}

// shouldRetry reports whether another attempt makes sense. A dead
// context never does, even when the failure itself is retryable.
func shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var ce *CompletionError
	return errors.As(err, &ce) && ce.Retryable
}

type openRouterRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}
