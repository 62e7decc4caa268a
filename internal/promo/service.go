package promo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/metrics"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
	notiftypes "github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/promo"
)

var (
	ErrInvalidDiscountType  = errors.New("discount type must be percent or flat")
	ErrInvalidDiscountValue = errors.New("discount value out of range")
)

type Repository interface {
	CreatePromo(ctx context.Context, p *promo.PromoCode) error
}

// Broadcaster fans the promocode record out to every user.
type Broadcaster interface {
	Broadcast(ctx context.Context, token string, rec notiftypes.Record) (*notification.FanoutResult, error)
}

type Service struct {
	repo       Repository
	dispatcher Broadcaster
}

func NewService(repo Repository, dispatcher Broadcaster) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

type IssueRequest struct {
	DiscountType string
	Value        float64
	ExpiresAt    *time.Time
	CreatedBy    string
}

// Issue generates a code, persists it, then broadcasts a promocode
// record to all users. A broadcast failure does not void the issued
// code; it is returned alongside a nil fan-out result and the error.
func (s *Service) Issue(ctx context.Context, token string, req *IssueRequest) (*promo.PromoCode, *notification.FanoutResult, error) {
	switch req.DiscountType {
	case promo.DiscountPercent:
		if req.Value <= 0 || req.Value > 100 {
			return nil, nil, ErrInvalidDiscountValue
		}
	case promo.DiscountFlat:
		if req.Value <= 0 {
			return nil, nil, ErrInvalidDiscountValue
		}
	default:
		return nil, nil, ErrInvalidDiscountType
	}

	p := &promo.PromoCode{
		Code:         generateCode(),
		DiscountType: req.DiscountType,
		Value:        req.Value,
		ExpiresAt:    req.ExpiresAt,
		CreatedBy:    req.CreatedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreatePromo(ctx, p); err != nil {
		return nil, nil, fmt.Errorf("create promo: %w", err)
	}
	metrics.PromoIssuedTotal.Inc()

	res, err := s.dispatcher.Broadcast(ctx, token, notiftypes.Record{
		Type:    notiftypes.TypePromocode,
		Message: promoMessage(p),
		Payload: notiftypes.PromoPayload{
			Code:         p.Code,
			DiscountType: p.DiscountType,
			Value:        p.Value,
			ExpiresAt:    p.ExpiresAt,
		},
	})
	if err != nil {
		return p, nil, fmt.Errorf("broadcast promo: %w", err)
	}
	return p, res, nil
}

func promoMessage(p *promo.PromoCode) string {
	if p.DiscountType == promo.DiscountPercent {
		return fmt.Sprintf("🎟️ New promo code %s: %.0f%% off your next order!", p.Code, p.Value)
	}
	return fmt.Sprintf("🎟️ New promo code %s: %.2f off your next order!", p.Code, p.Value)
}

func generateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CAFE-" + strings.ToUpper(raw[:8])
}
