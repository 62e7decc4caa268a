package orderapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
)

func TestUpdateStatusSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := &HTTPClient{Client: srv.Client(), Address: srv.URL}
	err := c.UpdateStatus(context.Background(), "tok-1", "ord-1", order.StatusPreparing)

	assert.NoError(t, err)
	assert.Equal(t, "/order/update-order/ord-1", gotPath)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "Preparing", gotBody["orderStatus"])
}

func TestUpdateStatusServerMessagePassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "order already finalised"})
	}))
	defer srv.Close()

	c := &HTTPClient{Client: srv.Client(), Address: srv.URL}
	err := c.UpdateStatus(context.Background(), "", "ord-1", order.StatusCompleted)

	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "order already finalised", apiErr.Message)
		assert.Equal(t, "order already finalised", err.Error())
	}
}

func TestUpdateStatusUnsuccessfulBody(t *testing.T) {
	// 200 with success=false still fails
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid status"})
	}))
	defer srv.Close()

	c := &HTTPClient{Client: srv.Client(), Address: srv.URL}
	err := c.UpdateStatus(context.Background(), "", "ord-1", order.StatusVerified)

	assert.EqualError(t, err, "invalid status")
}

func TestUpdateStatusNoBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &HTTPClient{Client: srv.Client(), Address: srv.URL}
	err := c.UpdateStatus(context.Background(), "", "ord-1", order.StatusVerified)

	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	}
}
