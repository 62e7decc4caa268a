package userdir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/user"
)

var ErrUserNotFound = errors.New("user not found")

type Directory interface {
	GetUser(ctx context.Context, token, userID string) (*user.User, error)
	ListUsers(ctx context.Context, token string) ([]user.User, error)
}

type getResponse struct {
	Success bool      `json:"success"`
	Data    user.User `json:"data"`
}

type listResponse struct {
	Success bool        `json:"success"`
	Data    []user.User `json:"data"`
}

type HTTPClient struct {
	Client  *http.Client
	Address string
}

func (c *HTTPClient) GetUser(ctx context.Context, token, userID string) (*user.User, error) {
	url := fmt.Sprintf("%s/users/%s", c.Address, userID)
	resp, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var gr getResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if !gr.Success {
		return nil, ErrUserNotFound
	}
	return &gr.Data, nil
}

// ListUsers returns every directory user; an empty directory is an
// empty slice, not an error.
func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]user.User, error) {
	url := fmt.Sprintf("%s/users", c.Address)
	resp, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if !lr.Success {
		return nil, fmt.Errorf("user directory reported failure")
	}
	return lr.Data, nil
}

func (c *HTTPClient) get(ctx context.Context, token, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}
