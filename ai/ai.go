package ai

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
)

// Upstream failure classes. The service is opaque and fallible; callers map
// these to responses at the request boundary and never retry here.
var (
	ErrUpstreamUnavailable = errors.New("model service unavailable")
	ErrUpstreamRejected    = errors.New("model service rejected request")
	ErrUpstreamMalformed   = errors.New("model service returned malformed response")
)

const defaultAPIURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"

// Client talks to the hosted completion endpoint. Every call is bounded by
// the HTTP client timeout; an unbounded upstream call would hang the request.
type Client struct {
	apiKey     string
	modelName  string
	apiURL     string
	httpClient *http.Client
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []Message `json:"messages"`
	} `json:"input"`
}

type completionResponse struct {
	Output struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

func New(apiKey, modelName, apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		modelName:  modelName,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete sends the composed message list and returns the raw response text.
// Failures are classified but not retried; retry policy, if any, belongs to
// an outer layer.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := completionRequest{Model: c.modelName}
	reqBody.Input.Messages = messages

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		// Body may echo credentials or internal detail; report only the status.
		return "", fmt.Errorf("%w: status %d", ErrUpstreamRejected, resp.StatusCode)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamMalformed, err)
	}
	if parsed.Code != "" && parsed.Code != "Success" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamRejected, parsed.Code)
	}
	if len(parsed.Output.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUpstreamMalformed)
	}

	return strings.TrimSpace(parsed.Output.Choices[0].Message.Content), nil
}
