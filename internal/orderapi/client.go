package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
)

// APIError carries the Order API's own failure message verbatim so
// callers can surface it without rewording.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("order api returned status %d", e.StatusCode)
}

type Client interface {
	UpdateStatus(ctx context.Context, token, orderID string, status order.OrderStatus) error
}

type updateRequest struct {
	OrderStatus string `json:"orderStatus"`
}

type updateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type HTTPClient struct {
	Client  *http.Client
	Address string
}

// UpdateStatus performs exactly one write against the Order API and
// never retries.
func (c *HTTPClient) UpdateStatus(ctx context.Context, token, orderID string, status order.OrderStatus) error {
	url := fmt.Sprintf("%s/order/update-order/%s", c.Address, orderID)

	body, err := json.Marshal(updateRequest{OrderStatus: string(status)})
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var ur updateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil && resp.StatusCode == http.StatusOK {
		return fmt.Errorf("decode body: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !ur.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: ur.Message}
	}
	return nil
}
