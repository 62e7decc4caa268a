package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/metrics"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/user"
)

// BucketUser is the shared bucket for directly-addressed records.
const BucketUser = "user"

type statusMessage struct {
	icon string
	text string
}

var statusMessages = map[string]statusMessage{
	"processing": {"🔄", "Your order is being processed"},
	"preparing":  {"👨‍🍳", "Your order is being prepared"},
	"ready":      {"✅", "Your order is ready for pickup"},
	"delivered":  {"🚚", "Your order has been delivered"},
	"completed":  {"🎉", "Your order is complete"},
	"cancelled":  {"❌", "Your order has been cancelled"},
}

// StatusMessage renders the icon+text line for a status. Unknown
// statuses fall back to a generic line carrying the raw value.
func StatusMessage(status string) string {
	if m, ok := statusMessages[strings.ToLower(status)]; ok {
		return m.icon + " " + m.text
	}
	return "📋 Your order status: " + status
}

// UserLister resolves the fan-out target set.
type UserLister interface {
	ListUsers(ctx context.Context, token string) ([]user.User, error)
}

type Dispatcher struct {
	store Store
	users UserLister
}

func NewDispatcher(store Store, users UserLister) *Dispatcher {
	return &Dispatcher{store: store, users: users}
}

// DispatchOrderStatus writes one order_status record addressed to the
// customer. A non-empty custom message replaces the generated icon+text
// entirely; no icon is forced onto it.
func (d *Dispatcher) DispatchOrderStatus(ctx context.Context, customerID string, o *order.Order, custom string) (string, error) {
	msg := custom
	if msg == "" {
		msg = StatusMessage(string(o.Status))
	}
	rec := &notification.Record{
		Type:         notification.TypeOrderStatus,
		TargetUserID: customerID,
		Message:      msg,
		Payload: notification.OrderPayload{
			OrderID: o.ID,
			Status:  string(o.Status),
			Items:   o.Items,
			Total:   o.Amount,
		},
		Timestamp: nowMillis(),
	}
	return d.push(ctx, BucketUser, rec)
}

// DispatchReward writes one reward record addressed to the customer.
func (d *Dispatcher) DispatchReward(ctx context.Context, customerID string, points int, value float64, description string) (string, error) {
	rec := &notification.Record{
		Type:         notification.TypeReward,
		TargetUserID: customerID,
		Message:      fmt.Sprintf("🎉 Order completed! You earned %d reward points!", points),
		Payload: notification.RewardPayload{
			Points:      points,
			Value:       value,
			Description: description,
		},
		Timestamp: nowMillis(),
	}
	return d.push(ctx, BucketUser, rec)
}

// Announce writes one announcement record into a role bucket.
func (d *Dispatcher) Announce(ctx context.Context, role, message string) (string, error) {
	rec := &notification.Record{
		Type:      notification.TypeAnnouncement,
		Message:   message,
		Timestamp: nowMillis(),
	}
	return d.push(ctx, role, rec)
}

type FanoutFailure struct {
	UserID string `json:"userId"`
	Error  string `json:"error"`
}

// FanoutResult reports every per-user outcome of a broadcast. Writes
// already committed before a failure stay committed; nothing is rolled
// back and nothing is silently dropped.
type FanoutResult struct {
	Succeeded []string        `json:"succeeded"`
	Failed    []FanoutFailure `json:"failed"`
}

// Broadcast resolves the full user set from the directory and writes
// one copy of rec per user. An empty directory yields an empty result.
func (d *Dispatcher) Broadcast(ctx context.Context, token string, rec notification.Record) (*FanoutResult, error) {
	users, err := d.users.ListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}

	res := &FanoutResult{Succeeded: []string{}, Failed: []FanoutFailure{}}
	for _, u := range users {
		metrics.FanoutTargetsTotal.Inc()

		r := rec
		r.TargetUserID = u.ID
		if r.Timestamp == 0 {
			r.Timestamp = nowMillis()
		}
		if _, err := d.push(ctx, BucketUser, &r); err != nil {
			res.Failed = append(res.Failed, FanoutFailure{UserID: u.ID, Error: err.Error()})
			continue
		}
		res.Succeeded = append(res.Succeeded, u.ID)
	}
	return res, nil
}

func (d *Dispatcher) push(ctx context.Context, bucket string, rec *notification.Record) (string, error) {
	id, err := d.store.Push(ctx, bucket, rec)
	if err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues(string(rec.Type)).Inc()
		return "", err
	}
	metrics.NotificationsDispatchedTotal.WithLabelValues(string(rec.Type)).Inc()
	return id, nil
}

func nowMillis() int64 {
	return time.Now().UTC().UnixMilli()
}
