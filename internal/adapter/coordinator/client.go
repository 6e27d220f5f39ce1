// Package coordinator provides an HTTP client for a downstream Run
// Coordinator. Every downstream failure is mapped into the gateway's error
// taxonomy: API-shaped errors pass through with their code, message and
// details, anything else becomes run_coordinator_unavailable. Single
// attempt, no retries.
package coordinator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/config"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// Client is an HTTP client for the Run Coordinator API.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

// NewClient creates a new coordinator client. The base URL is normalized
// before use; bearerToken may be empty.
func NewClient(baseURL, bearerToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     config.NormalizeBaseURL(baseURL),
		bearerToken: bearerToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the normalized coordinator base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /v1/health on the coordinator.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var health domain.Health
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// StartRun calls POST /v1/runs on the coordinator, forwarding the request
// body verbatim.
func (c *Client) StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error) {
	var run domain.Run
	if err := c.doJSON(ctx, http.MethodPost, "/v1/runs", body, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRun calls GET /v1/runs/:run_id on the coordinator.
func (c *Client) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	var run domain.Run
	if err := c.doJSON(ctx, http.MethodGet, "/v1/runs/"+runID, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// CancelRun calls POST /v1/runs/:run_id/cancel on the coordinator.
func (c *Client) CancelRun(ctx context.Context, runID string) (*domain.Run, error) {
	var run domain.Run
	if err := c.doJSON(ctx, http.MethodPost, "/v1/runs/"+runID+"/cancel", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// StreamRunEvents calls GET /v1/runs/:run_id/events on the coordinator and
// returns the streamed payload as-is.
func (c *Client) StreamRunEvents(ctx context.Context, runID string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/runs/"+runID+"/events", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewRunCoordinatorUnavailable(c.baseURL, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewRunCoordinatorUnavailable(c.baseURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.mapErrorResponse(resp.StatusCode, payload)
	}
	return string(payload), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, domain.NewRunCoordinatorUnavailable(c.baseURL, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return domain.NewRunCoordinatorUnavailable(c.baseURL, fmt.Errorf("failed to marshal request: %w", err))
		}
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewRunCoordinatorUnavailable(c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return c.mapErrorResponse(resp.StatusCode, respBody)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewRunCoordinatorUnavailable(c.baseURL, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// apiErrorBody is the error body shape of the coordinator API.
type apiErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// mapErrorResponse converts a non-2xx coordinator response into an APIError.
// Recognized API errors pass through with their own code and message; the
// status defaults to 502 when the response carried no usable one.
func (c *Client) mapErrorResponse(status int, body []byte) *domain.APIError {
	var errBody apiErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil && errBody.Code != "" {
		if status < 400 {
			status = http.StatusBadGateway
		}
		return &domain.APIError{
			Code:    errBody.Code,
			Message: errBody.Message,
			Status:  status,
			Details: errBody.Details,
		}
	}
	return domain.NewRunCoordinatorUnavailable(
		c.baseURL,
		fmt.Errorf("coordinator returned status %d: %s", status, string(body)),
	)
}
