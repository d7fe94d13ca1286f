package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"studygroups-backend/internal/domain"
)

// API is the slice of the backend the chat view needs.
type API interface {
	ListMessages(ctx context.Context, groupID int64) ([]domain.Message, error)
	SendMessage(ctx context.Context, groupID int64, body string) (*domain.Message, error)
}

// APIError carries a non-2xx response that does not map onto a domain
// sentinel.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

const codeSessionExpired = "SESSION_EXPIRED"

// Client talks to the backend's REST endpoints.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the access token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ListMessages(ctx context.Context, groupID int64) ([]domain.Message, error) {
	var msgs []domain.Message
	path := fmt.Sprintf("/groups/%d/messages", groupID)
	if err := c.do(ctx, http.MethodGet, path, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, groupID int64, body string) (*domain.Message, error) {
	var msg domain.Message
	path := fmt.Sprintf("/groups/%d/messages", groupID)
	payload := map[string]string{"message": body}
	if err := c.do(ctx, http.MethodPost, path, payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// asError maps the server's error envelope onto the domain sentinels the
// poller keys on. An unreadable envelope on a 401 still counts as an expired
// session.
func (c *Client) asError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch {
	case resp.StatusCode == http.StatusUnauthorized && (envelope.Code == codeSessionExpired || envelope.Code == ""):
		return domain.ErrAuthExpired
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	}
	return &APIError{Status: resp.StatusCode, Code: envelope.Code, Message: envelope.Error}
}
