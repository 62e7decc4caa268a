package promo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/middleware"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/promo"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type issueReq struct {
	DiscountType string     `json:"discountType"`
	Value        float64    `json:"value"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

type issueResp struct {
	Promo   *promo.PromoCode           `json:"promo"`
	Fanout  *notification.FanoutResult `json:"fanout,omitempty"`
	Warning string                     `json:"warning,omitempty"`
}

func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	p, fanout, err := h.svc.Issue(r.Context(), token, &IssueRequest{
		DiscountType: req.DiscountType,
		Value:        req.Value,
		ExpiresAt:    req.ExpiresAt,
		CreatedBy:    middleware.UserIDFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDiscountType), errors.Is(err, ErrInvalidDiscountValue):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case p == nil:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	resp := issueResp{Promo: p, Fanout: fanout}
	if err != nil {
		// code issued, broadcast failed: soft outcome, never a hard error
		resp.Warning = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
