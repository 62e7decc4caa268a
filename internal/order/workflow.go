package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/logger"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/metrics"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/types/order"
)

var ErrTransitionRejected = errors.New("order is in a terminal status")

type Outcome string

const (
	OutcomeRejected             Outcome = "rejected"
	OutcomePersistFailed        Outcome = "persist_failed"
	OutcomePersistedNotNotified Outcome = "persisted_but_not_notified"
	OutcomeSuccess              Outcome = "success"
	OutcomeSuccessWithReward    Outcome = "success_with_reward"
	OutcomeSuccessRewardFailed  Outcome = "success_reward_failed"
)

// StatusUpdater persists a new status via the external Order API.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, token, orderID string, status order.OrderStatus) error
}

// StatusNotifier informs the customer about the persisted status.
type StatusNotifier interface {
	DispatchOrderStatus(ctx context.Context, customerID string, o *order.Order, custom string) (string, error)
}

// RewardGranter dispatches bonus points for a completed order.
type RewardGranter interface {
	Grant(ctx context.Context, customerID, orderID string, amount float64) (id string, points int, err error)
}

// TransitionRecorder keeps the audit trail. Append failures are logged,
// never surfaced.
type TransitionRecorder interface {
	RecordTransition(ctx context.Context, t *order.TransitionLog) error
	ListTransitions(ctx context.Context, orderID string) ([]order.TransitionLog, error)
}

// TransitionRequest carries everything one invocation needs, the
// caller's token included; nothing is read from ambient state.
type TransitionRequest struct {
	OrderID       string
	CurrentStatus order.OrderStatus
	NewStatus     order.OrderStatus
	CustomerID    string
	Amount        float64
	Items         []order.Item
	Message       string
	AuthToken     string
	Actor         string
}

// Result is the consolidated outcome of one invocation. Err is only set
// for hard failures; Warning for the soft ones where the status change
// itself already landed.
type Result struct {
	Outcome              Outcome
	Order                *order.Order
	NotificationID       string
	RewardNotificationID string
	Points               int
	Err                  error
	Warning              error
}

// Workflow runs one status transition: guard, persist, notify, and for
// completed orders a reward grant. Steps run strictly in that sequence,
// every failure is terminal for the invocation, and nothing is retried
// or rolled back.
type Workflow struct {
	updater  StatusUpdater
	notifier StatusNotifier
	rewards  RewardGranter
	audit    TransitionRecorder
}

func NewWorkflow(u StatusUpdater, n StatusNotifier, r RewardGranter, a TransitionRecorder) *Workflow {
	return &Workflow{updater: u, notifier: n, rewards: r, audit: a}
}

func (w *Workflow) Run(ctx context.Context, req *TransitionRequest) *Result {
	res := &Result{}
	defer w.finish(ctx, req, res)

	if !CanTransition(string(req.CurrentStatus)) {
		res.Outcome = OutcomeRejected
		res.Err = ErrTransitionRejected
		return res
	}

	if err := w.updater.UpdateStatus(ctx, req.AuthToken, req.OrderID, req.NewStatus); err != nil {
		res.Outcome = OutcomePersistFailed
		res.Err = err
		return res
	}
	res.Order = &order.Order{
		ID:         req.OrderID,
		CustomerID: req.CustomerID,
		Status:     req.NewStatus,
		Amount:     req.Amount,
		Items:      req.Items,
	}

	id, err := w.notifier.DispatchOrderStatus(ctx, req.CustomerID, res.Order, req.Message)
	if err != nil {
		res.Outcome = OutcomePersistedNotNotified
		res.Warning = err
		return res
	}
	res.NotificationID = id

	if !strings.EqualFold(string(req.NewStatus), string(order.StatusCompleted)) {
		res.Outcome = OutcomeSuccess
		return res
	}

	rid, points, err := w.rewards.Grant(ctx, req.CustomerID, req.OrderID, req.Amount)
	res.Points = points
	if err != nil {
		res.Outcome = OutcomeSuccessRewardFailed
		res.Warning = err
		return res
	}
	res.RewardNotificationID = rid
	res.Outcome = OutcomeSuccessWithReward
	return res
}

func (w *Workflow) finish(ctx context.Context, req *TransitionRequest, res *Result) {
	metrics.TransitionsTotal.WithLabelValues(string(res.Outcome)).Inc()

	if w.audit == nil {
		return
	}
	t := &order.TransitionLog{
		OrderID:    req.OrderID,
		FromStatus: string(req.CurrentStatus),
		ToStatus:   string(req.NewStatus),
		Outcome:    string(res.Outcome),
		Actor:      req.Actor,
		CreatedAt:  time.Now().UTC(),
	}
	if err := w.audit.RecordTransition(ctx, t); err != nil {
		logger.Log.Warn("audit append failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err),
		)
	}
}
