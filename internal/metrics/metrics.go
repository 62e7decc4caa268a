package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the transition workflow and notification dispatch.
var (
	TransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Total number of status transition invocations by terminal outcome",
		},
		[]string{"outcome"},
	)

	NotificationsDispatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dispatched_total",
			Help: "Total number of notification records written by type",
		},
		[]string{"type"},
	)

	NotificationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Total number of failed notification store writes by type",
		},
		[]string{"type"},
	)

	FanoutTargetsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_fanout_targets_total",
			Help: "Total number of per-user records attempted during broadcasts",
		},
	)

	PromoIssuedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "promo_codes_issued_total",
			Help: "Total number of promo codes issued",
		},
	)
)

func init() {
	prometheus.MustRegister(
		TransitionsTotal,
		NotificationsDispatchedTotal,
		NotificationFailuresTotal,
		FanoutTargetsTotal,
		PromoIssuedTotal,
	)
}
