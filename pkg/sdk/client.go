// Package sdk is a minimal HTTP client for the recommendation API.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to a running recommendation API server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RecommendRequest mirrors the POST /recommend body. Nil preference
// pointers are omitted, leaving the preference unset server-side.
type RecommendRequest struct {
	Query              string `json:"query"`
	K                  int    `json:"k,omitempty"`
	RemotePreferred    *bool  `json:"remote_preferred,omitempty"`
	AdaptivePreferred  *bool  `json:"adaptive_preferred,omitempty"`
	TestTypePreference string `json:"test_type_preference,omitempty"`
}

// Result is one ranked recommendation.
type Result struct {
	Rank            int     `json:"rank"`
	Score           float64 `json:"score"`
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	TestType        string  `json:"test_type"`
	RemoteSupport   string  `json:"remote_support"`
	AdaptiveSupport string  `json:"adaptive_support"`
	JobLevels       string  `json:"job_levels"`
	LongDescription string  `json:"long_description"`
}

// HealthStatus is the GET /health response.
type HealthStatus struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	Assessments *int              `json:"assessments,omitempty"`
	Version     string            `json:"version,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Recommend returns ranked recommendations for the request.
func (c *Client) Recommend(ctx context.Context, req RecommendRequest) ([]Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	var resp struct {
		Results []Result `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/recommend", bytes.NewReader(body), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Health returns the server health report. A degraded server responds
// with 503 but still carries a valid body, so that is not an error here.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	defer resp.Body.Close()

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "unknown"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
