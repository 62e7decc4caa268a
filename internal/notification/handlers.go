package notification

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
)

type Handler struct {
	d *Dispatcher
}

func NewHandler(d *Dispatcher) *Handler {
	return &Handler{d: d}
}

var roleBuckets = map[string]bool{
	"user":  true,
	"staff": true,
	"admin": true,
}

type announceReq struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

type announceResp struct {
	NotificationID string `json:"notificationId"`
}

func (h *Handler) Announce(w http.ResponseWriter, r *http.Request) {
	var req announceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !roleBuckets[req.Role] || req.Message == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	id, err := h.d.Announce(r.Context(), req.Role, req.Message)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(announceResp{NotificationID: id})
}

type broadcastReq struct {
	Message string `json:"message"`
}

func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	res, err := h.d.Broadcast(r.Context(), token, notification.Record{
		Type:    notification.TypeAnnouncement,
		Message: req.Message,
	})
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
