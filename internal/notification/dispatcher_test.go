package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/user"
)

type pushed struct {
	bucket string
	rec    notification.Record
}

type mockStore struct {
	mu      sync.Mutex
	pushes  []pushed
	nextID  int
	failFor map[string]error // keyed by TargetUserID
}

func newMockStore() *mockStore {
	return &mockStore{failFor: make(map[string]error)}
}

func (m *mockStore) Push(ctx context.Context, bucket string, rec *notification.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[rec.TargetUserID]; ok {
		return "", err
	}
	m.pushes = append(m.pushes, pushed{bucket: bucket, rec: *rec})
	m.nextID++
	return fmt.Sprintf("key-%d", m.nextID), nil
}

type mockLister struct {
	users []user.User
	err   error
}

func (m *mockLister) ListUsers(ctx context.Context, token string) ([]user.User, error) {
	return m.users, m.err
}

func TestStatusMessageTable(t *testing.T) {
	assert.Equal(t, "🔄 Your order is being processed", StatusMessage("processing"))
	assert.Equal(t, "👨‍🍳 Your order is being prepared", StatusMessage("Preparing"))
	assert.Equal(t, "✅ Your order is ready for pickup", StatusMessage("ready"))
	assert.Equal(t, "🚚 Your order has been delivered", StatusMessage("delivered"))
	assert.Equal(t, "🎉 Your order is complete", StatusMessage("COMPLETED"))
	assert.Equal(t, "❌ Your order has been cancelled", StatusMessage("cancelled"))
	assert.Equal(t, "📋 Your order status: Verified", StatusMessage("Verified"))
}

func TestDispatchOrderStatus(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{})

	o := &order.Order{
		ID:         "ord-1",
		CustomerID: "cust-1",
		Status:     order.StatusPreparing,
		Amount:     250,
		Items:      []order.Item{{Name: "Momo", Quantity: 2, UnitPrice: 125}},
	}
	id, err := d.DispatchOrderStatus(context.Background(), "cust-1", o, "")

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	if assert.Len(t, store.pushes, 1) {
		p := store.pushes[0]
		assert.Equal(t, BucketUser, p.bucket)
		assert.Equal(t, notification.TypeOrderStatus, p.rec.Type)
		assert.Equal(t, "cust-1", p.rec.TargetUserID)
		assert.Equal(t, "👨‍🍳 Your order is being prepared", p.rec.Message)
		assert.False(t, p.rec.Read)
		assert.NotZero(t, p.rec.Timestamp)

		payload, ok := p.rec.Payload.(notification.OrderPayload)
		if assert.True(t, ok) {
			assert.Equal(t, "ord-1", payload.OrderID)
			assert.Equal(t, "Preparing", payload.Status)
			assert.Equal(t, 250.0, payload.Total)
			assert.Len(t, payload.Items, 1)
		}
	}
}

func TestDispatchOrderStatusCustomMessage(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{})

	o := &order.Order{ID: "ord-1", Status: order.StatusPreparing}
	_, err := d.DispatchOrderStatus(context.Background(), "cust-1", o, "Your momo is on the stove")

	assert.NoError(t, err)
	// custom text replaces the generated line entirely, no forced icon
	assert.Equal(t, "Your momo is on the stove", store.pushes[0].rec.Message)
}

func TestDispatchReward(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{})

	_, err := d.DispatchReward(context.Background(), "cust-1", 3, 350, "Reward for order ord-1")

	assert.NoError(t, err)
	p := store.pushes[0]
	assert.Equal(t, notification.TypeReward, p.rec.Type)
	assert.Equal(t, "🎉 Order completed! You earned 3 reward points!", p.rec.Message)

	payload, ok := p.rec.Payload.(notification.RewardPayload)
	if assert.True(t, ok) {
		assert.Equal(t, 3, payload.Points)
		assert.Equal(t, 350.0, payload.Value)
	}
}

func TestAnnounceTargetsRoleBucket(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{})

	_, err := d.Announce(context.Background(), "staff", "Kitchen closes early today")

	assert.NoError(t, err)
	p := store.pushes[0]
	assert.Equal(t, "staff", p.bucket)
	assert.Equal(t, notification.TypeAnnouncement, p.rec.Type)
	assert.Empty(t, p.rec.TargetUserID)
}

func TestBroadcastFanout(t *testing.T) {
	store := newMockStore()
	lister := &mockLister{users: []user.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}}
	d := NewDispatcher(store, lister)

	res, err := d.Broadcast(context.Background(), "tok", notification.Record{
		Type:    notification.TypePromocode,
		Message: "🎟️ New promo code CAFE-ABC: 10% off your next order!",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u3"}, res.Succeeded)
	assert.Empty(t, res.Failed)
	assert.Len(t, store.pushes, 3)
	for i, p := range store.pushes {
		assert.Equal(t, BucketUser, p.bucket)
		assert.Equal(t, lister.users[i].ID, p.rec.TargetUserID)
	}
}

func TestBroadcastEmptyDirectory(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{users: []user.User{}})

	res, err := d.Broadcast(context.Background(), "tok", notification.Record{
		Type:    notification.TypeAnnouncement,
		Message: "hello",
	})

	assert.NoError(t, err, "zero users is an empty result, not an error")
	assert.Empty(t, res.Succeeded)
	assert.Empty(t, res.Failed)
	assert.Empty(t, store.pushes)
}

func TestBroadcastPartialFailureCollectsAll(t *testing.T) {
	store := newMockStore()
	store.failFor["u2"] = errors.New("write refused")
	d := NewDispatcher(store, &mockLister{users: []user.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}})

	res, err := d.Broadcast(context.Background(), "tok", notification.Record{
		Type:    notification.TypeAnnouncement,
		Message: "hello",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"u1", "u3"}, res.Succeeded, "committed writes stay committed")
	if assert.Len(t, res.Failed, 1) {
		assert.Equal(t, "u2", res.Failed[0].UserID)
		assert.Equal(t, "write refused", res.Failed[0].Error)
	}
}

func TestBroadcastDirectoryError(t *testing.T) {
	store := newMockStore()
	d := NewDispatcher(store, &mockLister{err: errors.New("directory down")})

	res, err := d.Broadcast(context.Background(), "tok", notification.Record{
		Type:    notification.TypeAnnouncement,
		Message: "hello",
	})

	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, store.pushes, "no writes when the user set cannot be resolved")
}
