package notification

import (
	"time"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
)

type Type string

const (
	TypeOrderStatus  Type = "order_status"
	TypeReward       Type = "reward"
	TypePromocode    Type = "promocode"
	TypeAnnouncement Type = "announcement"
)

// Record is one push-style message. Immutable once written, except for
// Read which the inbox UIs flip later.
type Record struct {
	Type         Type   `json:"type"`
	TargetUserID string `json:"targetUserId,omitempty"`
	Message      string `json:"message"`
	Payload      any    `json:"payload,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	Read         bool   `json:"read"`
}

type OrderPayload struct {
	OrderID string       `json:"orderId"`
	Status  string       `json:"status"`
	Items   []order.Item `json:"items,omitempty"`
	Total   float64      `json:"total"`
}

type RewardPayload struct {
	Points      int     `json:"points"`
	Value       float64 `json:"value,omitempty"`
	Description string  `json:"description,omitempty"`
}

type PromoPayload struct {
	Code         string     `json:"code"`
	DiscountType string     `json:"discountType"`
	Value        float64    `json:"value"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}
