package model

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

// RunnerClient is a thin JSON/HTTP client for the model-runner sidecar.
type RunnerClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRunnerClient builds a client for the runner at endpoint. The endpoint
// is the base URL without any path; request paths are appended per call.
func NewRunnerClient(endpoint string, timeout time.Duration) (*RunnerClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("runner: missing endpoint")
	}
	return &RunnerClient{
		baseURL:    strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// PostJSON sends a POST to the runner. It marshals body as JSON, treats any
// non-2xx status as an error carrying the runner's response text, and when
// out is non-nil decodes the response body into it.
func (c *RunnerClient) PostJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("runner http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		// Surface the runner's own message; it is what ends up wrapped in
		// the 500 body returned to the orchestrator.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("runner http %d for %s: %s", resp.StatusCode, url, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// GetJSON sends a GET to the runner and decodes the response into out.
func (c *RunnerClient) GetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("runner http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("runner http %d for %s", resp.StatusCode, c.baseURL+path)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases idle connections held by the underlying transport.
func (c *RunnerClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
