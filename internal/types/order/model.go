package order

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusVerified  OrderStatus = "Verified"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// ParseStatus matches s against the recognised status literals,
// case-insensitively, and returns the canonical form.
func ParseStatus(s string) (OrderStatus, bool) {
	for _, st := range []OrderStatus{
		StatusPending, StatusPreparing, StatusVerified, StatusCompleted, StatusCancelled,
	} {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

type Item struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     OrderStatus `json:"status"`
	Amount     float64     `json:"amount"`
	Items      []Item      `json:"items,omitempty"`
}

// TransitionLog is one audit row per workflow invocation, terminal
// outcome included.
type TransitionLog struct {
	ID         int64     `db:"id" json:"-"`
	OrderID    string    `db:"order_id" json:"orderId"`
	FromStatus string    `db:"from_status" json:"from"`
	ToStatus   string    `db:"to_status" json:"to"`
	Outcome    string    `db:"outcome" json:"outcome"`
	Actor      string    `db:"actor" json:"actor,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
