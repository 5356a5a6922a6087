package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultCompletionEndpoint is the hosted completion service used when no endpoint is configured.
const DefaultCompletionEndpoint = "https://api.a0.dev/ai/llm"

// Completion talks to a plain completion endpoint: it accepts {"messages": [...]}
// and answers with {"completion": "..."}.
type Completion struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewCompletion returns a client for endpoint. A zero timeout leaves the
// transport defaults in place.
func NewCompletion(endpoint, apiKey string, timeout time.Duration) *Completion {
	if endpoint == "" {
		endpoint = DefaultCompletionEndpoint
	}
	return &Completion{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Completion) Chat(ctx context.Context, messages []Message) (string, error) {
	body := map[string]interface{}{
		"messages": messages,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("completion API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var completionResp struct {
		Completion *string `json:"completion"`
	}
	if err := json.Unmarshal(respBytes, &completionResp); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if completionResp.Completion == nil || *completionResp.Completion == "" {
		return "", fmt.Errorf("empty completion in response")
	}
	return *completionResp.Completion, nil
}

// Endpoint returns the URL requests are sent to.
func (c *Completion) Endpoint() string {
	return c.endpoint
}
