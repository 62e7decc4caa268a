package storage

import (
	"context"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/promo"
)

// TransitionLogRepository keeps the per-order audit trail.
type TransitionLogRepository interface {
	RecordTransition(ctx context.Context, t *order.TransitionLog) error
	ListTransitions(ctx context.Context, orderID string) ([]order.TransitionLog, error)
}

// PromoRepository stores issued promo codes.
type PromoRepository interface {
	CreatePromo(ctx context.Context, p *promo.PromoCode) error
	FindPromoByCode(ctx context.Context, code string) (*promo.PromoCode, error)
}

// Storage aggregates the repositories plus connection management.
type Storage interface {
	TransitionLogRepository
	PromoRepository

	Ping(ctx context.Context) error
	Close() error
}
