package promo

import "time"

const (
	DiscountPercent = "percent"
	DiscountFlat    = "flat"
)

type PromoCode struct {
	ID           int64      `db:"id" json:"-"`
	Code         string     `db:"code" json:"code"`
	DiscountType string     `db:"discount_type" json:"discountType"`
	Value        float64    `db:"value" json:"value"`
	ExpiresAt    *time.Time `db:"expires_at" json:"expiresAt,omitempty"`
	CreatedBy    string     `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}
