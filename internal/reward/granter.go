package reward

import (
	"context"
	"fmt"
	"math"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
)

// Points computes the bonus for a completed order: one point per full
// 100 of the order amount, never less than one.
func Points(amount float64) int {
	p := int(math.Floor(amount / 100))
	if p < 1 {
		return 1
	}
	return p
}

type Granter struct {
	dispatcher *notification.Dispatcher
}

func NewGranter(d *notification.Dispatcher) *Granter {
	return &Granter{dispatcher: d}
}

// Grant computes the points for the order and dispatches the reward
// record to the customer. Nothing is persisted beyond the notification.
func (g *Granter) Grant(ctx context.Context, customerID, orderID string, amount float64) (string, int, error) {
	points := Points(amount)
	id, err := g.dispatcher.DispatchReward(ctx, customerID, points, amount,
		fmt.Sprintf("Reward for order %s", orderID))
	if err != nil {
		return "", points, fmt.Errorf("dispatch reward: %w", err)
	}
	return id, points, nil
}
