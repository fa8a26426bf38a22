// Package remote talks to the online chat API and falls back to the offline
// responder when it is unreachable.
package remote

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

	"github.com/rcliao/offline-assist/internal/config"
)

// Request is one chat turn sent to the remote API.
type Request struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type response struct {
	Answer string `json:"answer"`
}

// Client answers queries using a remote service.
type Client interface {
	Ask(ctx context.Context, req Request) (string, error)
}

// ErrEmptyAnswer is returned when the remote API replies without text.
var ErrEmptyAnswer = errors.New("remote returned empty answer")

// HTTPClient posts JSON to <baseURL>/chat.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a client for the chat API at baseURL.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Ask(ctx context.Context, r Request) (string, error) {
	body, _ := json.Marshal(r)
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chat error %d: %s", resp.StatusCode, string(b))
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if strings.TrimSpace(result.Answer) == "" {
		return "", ErrEmptyAnswer
	}
	return result.Answer, nil
}

// NewFromConfig returns a client for the configured remote API, or nil when
// none is configured.
func NewFromConfig(cfg *config.Config) Client {
	if !cfg.RemoteEnabled() {
		return nil
	}
	return NewHTTPClient(cfg.RemoteURL, cfg.RemoteToken, cfg.RemoteTimeout)
}
