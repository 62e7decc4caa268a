package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/middleware"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
)

type Handler struct {
	wf    *Workflow
	audit TransitionRecorder
}

func NewHandler(wf *Workflow, audit TransitionRecorder) *Handler {
	return &Handler{wf: wf, audit: audit}
}

type transitionReq struct {
	CurrentStatus string       `json:"currentStatus"`
	NewStatus     string       `json:"newStatus"`
	CustomerID    string       `json:"customerId"`
	Amount        float64      `json:"amount"`
	Items         []order.Item `json:"items"`
	Message       string       `json:"message,omitempty"`
}

type transitionResp struct {
	Outcome              Outcome `json:"outcome"`
	Status               string  `json:"status,omitempty"`
	NotificationID       string  `json:"notificationId,omitempty"`
	RewardNotificationID string  `json:"rewardNotificationId,omitempty"`
	Points               int     `json:"points,omitempty"`
	Error                string  `json:"error,omitempty"`
	Warning              string  `json:"warning,omitempty"`
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req transitionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	newStatus, ok := order.ParseStatus(req.NewStatus)
	if !ok {
		http.Error(w, "unrecognised status", http.StatusBadRequest)
		return
	}
	if req.CustomerID == "" || req.Amount < 0 {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res := h.wf.Run(r.Context(), &TransitionRequest{
		OrderID:       orderID,
		CurrentStatus: order.OrderStatus(req.CurrentStatus),
		NewStatus:     newStatus,
		CustomerID:    req.CustomerID,
		Amount:        req.Amount,
		Items:         req.Items,
		Message:       req.Message,
		AuthToken:     bearerToken(r),
		Actor:         middleware.UserIDFromContext(r.Context()),
	})

	resp := transitionResp{
		Outcome:              res.Outcome,
		NotificationID:       res.NotificationID,
		RewardNotificationID: res.RewardNotificationID,
		Points:               res.Points,
	}
	if res.Order != nil {
		resp.Status = string(res.Order.Status)
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	if res.Warning != nil {
		resp.Warning = res.Warning.Error()
	}

	code := http.StatusOK
	switch {
	case errors.Is(res.Err, ErrTransitionRejected):
		code = http.StatusConflict
	case res.Outcome == OutcomePersistFailed:
		code = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	logs, err := h.audit.ListTransitions(r.Context(), orderID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if len(logs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(logs)
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
