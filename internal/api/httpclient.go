package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/models"
)

const errBodyLimit = 64 << 10

// HTTPClient talks JSON over HTTP to a fittrack server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the API at baseURL. Every request is
// bounded by timeout; pass 0 for no bound.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (*AuthResult, error) {
	res := &AuthResult{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/local/register", "", creds, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*AuthResult, error) {
	// The server expects the email under "identifier".
	body := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{Identifier: creds.Email, Password: creds.Password}

	res := &AuthResult{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/local", "", body, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodPut, "/api/users/me", token, update, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) FoodLogs(ctx context.Context, token string) ([]models.FoodEntry, error) {
	var logs []models.FoodEntry
	if err := c.do(ctx, http.MethodGet, "/api/food-logs", token, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *HTTPClient) ActivityLogs(ctx context.Context, token string) ([]models.ActivityEntry, error) {
	var logs []models.ActivityEntry
	if err := c.do(ctx, http.MethodGet, "/api/activity-logs", token, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// do executes one API call: marshals body (if any), attaches the bearer
// token (if any), and decodes the response into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError builds an *Error from a non-2xx response, extracting the
// server's {"error":{"message":...}} text when present.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, errBodyLimit)).Decode(&payload); err == nil {
		apiErr.Message = payload.Error.Message
	}
	return apiErr
}
