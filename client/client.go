// ABOUTME: HTTP client for the capacity sizer API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"serversizer/models"
)

// Client is the API client for the capacity sizer backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response.
type HealthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
	VSphere string `json:"vsphere"`
}

// Health fetches the service health state.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get(ctx, "/api/v1/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Processors fetches the processor catalog.
func (c *Client) Processors(ctx context.Context) ([]models.Processor, error) {
	var procs []models.Processor
	if err := c.get(ctx, "/api/v1/processors", &procs); err != nil {
		return nil, err
	}
	return procs, nil
}

// RedundancySchemes fetches the supported redundancy table.
func (c *Client) RedundancySchemes(ctx context.Context) ([]models.SchemeInfo, error) {
	var schemes []models.SchemeInfo
	if err := c.get(ctx, "/api/v1/redundancy/schemes", &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// Size submits a sizing request and returns the result.
func (c *Client) Size(ctx context.Context, req models.SizingRequest) (*models.SizingResult, error) {
	var result models.SizingResult
	if err := c.post(ctx, "/api/v1/sizing", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes either the result or the API's
// error body.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			if apiErr.Details != "" {
				return fmt.Errorf("API error (%d): %s: %s", resp.StatusCode, apiErr.Error, apiErr.Details)
			}
			return fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
