package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
)

// Store appends one record under a bucket and returns the generated key.
// Buckets are role names ("staff", "admin") or the shared "user" bucket
// with the target user id embedded in the record itself.
type Store interface {
	Push(ctx context.Context, bucket string, rec *notification.Record) (string, error)
}

type pushResponse struct {
	Name string `json:"name"`
}

// RTDBStore writes records over the realtime database REST surface:
// POST {address}/notifications/{bucket}.json returns the new child key.
type RTDBStore struct {
	Client  *http.Client
	Address string
	Secret  string
}

func (s *RTDBStore) Push(ctx context.Context, bucket string, rec *notification.Record) (string, error) {
	url := fmt.Sprintf("%s/notifications/%s.json", s.Address, bucket)
	if s.Secret != "" {
		url += "?auth=" + neturl.QueryEscape(s.Secret)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("notification store returned status %d", resp.StatusCode)
	}

	var pr pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	if pr.Name == "" {
		return "", fmt.Errorf("notification store returned no key")
	}
	return pr.Name, nil
}
