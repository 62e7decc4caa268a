package reward

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
	notiftypes "github.com/rohanmgr130/Cafeteria-sub000/internal/types/notification"
)

func TestPoints(t *testing.T) {
	cases := []struct {
		amount float64
		want   int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 1},
		{199, 1},
		{250, 2},
		{350, 3},
		{1000, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Points(c.amount), "amount=%v", c.amount)
	}
}

type recordingStore struct {
	bucket string
	rec    *notiftypes.Record
	err    error
}

func (s *recordingStore) Push(ctx context.Context, bucket string, rec *notiftypes.Record) (string, error) {
	s.bucket = bucket
	s.rec = rec
	if s.err != nil {
		return "", s.err
	}
	return "reward-key", nil
}

func TestGrantDispatchesReward(t *testing.T) {
	store := &recordingStore{}
	g := NewGranter(notification.NewDispatcher(store, nil))

	id, points, err := g.Grant(context.Background(), "cust-1", "ord-1", 350)

	assert.NoError(t, err)
	assert.Equal(t, "reward-key", id)
	assert.Equal(t, 3, points)
	assert.Equal(t, "user", store.bucket)
	assert.Equal(t, notiftypes.TypeReward, store.rec.Type)
	assert.Equal(t, "cust-1", store.rec.TargetUserID)
	assert.Equal(t, "🎉 Order completed! You earned 3 reward points!", store.rec.Message)
}

func TestGrantStoreFailure(t *testing.T) {
	store := &recordingStore{err: errors.New("write refused")}
	g := NewGranter(notification.NewDispatcher(store, nil))

	_, points, err := g.Grant(context.Background(), "cust-1", "ord-1", 40)

	assert.Error(t, err)
	assert.Equal(t, 1, points, "points are still reported for the caller's warning")
}
