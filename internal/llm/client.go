// Package llm talks to an OpenAI-compatible chat completion API. The agent
// treats it as an opaque text-in/text-out collaborator: one request, one
// reply string, no tool-call protocol at this layer.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodfoods/goodfoods/internal/core"
)

// Client calls the chat completions endpoint.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	HTTP    *http.Client
}

// NewClient creates a client for the given endpoint and model.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		HTTP:    http.DefaultClient,
	}
}

// chatRequest is the request body for chat completions.
type chatRequest struct {
	Model       string         `json:"model"`
	Messages    []core.Message `json:"messages"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Temperature float64        `json:"temperature"`
}

// chatResponse is the response from chat completions.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
			Role    string          `json:"role"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// parseContent parses API content that may be a string, null, or an array of
// parts (e.g. [{"type":"text","text":"..."}]).
func parseContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parts); err == nil {
		var b strings.Builder
		for _, p := range parts {
			if p.Type == "text" {
				b.WriteString(p.Text)
			}
		}
		return b.String()
	}
	return ""
}

// Complete sends the messages and returns the assistant reply content.
// Each call is bounded by the configured timeout; retries once with backoff
// on rate limits and 5xx responses.
func (c *Client) Complete(ctx context.Context, messages []core.Message, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("llm: API key not set")
	}
	if c.Model == "" {
		return "", fmt.Errorf("llm: model not set")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	body := chatRequest{Model: c.Model, Messages: messages, MaxTokens: maxTokens, Temperature: 0.6}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	var resp *http.Response
	backoff := 1 * time.Second
	maxRetries := 2
	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		req, rerr := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(raw))
		if rerr != nil {
			return "", rerr
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.APIKey)

		resp, err = c.HTTP.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			resp = nil
			continue
		}
		break
	}
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("llm: request failed after retries")
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm: HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}
	var out chatResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return "", fmt.Errorf("llm: decode: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("llm: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("llm: no choices in response")
	}
	return parseContent(out.Choices[0].Message.Content), nil
}

var _ core.LLMClient = (*Client)(nil)
