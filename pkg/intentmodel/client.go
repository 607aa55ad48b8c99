// Package intentmodel provides the optional trained-model intent classifier
// as an injected capability backed by an external inference service.
package intentmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 3 * time.Second

// Client calls an HTTP inference endpoint that classifies text.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a classifier client for the given inference service URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// Classify sends the utterance to the inference service and returns ranked
// predictions, highest score first.
func (c *Client) Classify(ctx context.Context, message string) ([]Prediction, error) {
	body, err := json.Marshal(classifyRequest{Text: message})
	if err != nil {
		return nil, fmt.Errorf("intentmodel: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("intentmodel: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("intentmodel: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("intentmodel: unexpected status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("intentmodel: decode response: %w", err)
	}

	return out.Predictions, nil
}
