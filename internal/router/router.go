package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/logger"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/middleware"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/promo"
)

func NewRouter(
	orderH *order.Handler,
	notifH *notification.Handler,
	promoH *promo.Handler,
	jwtSecret []byte,
) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.WithLogging)
	r.Use(chiMiddleware.Recoverer)

	r.Use(middleware.GzipHandler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, "staff", "admin"))

		r.Post("/api/orders/{orderID}/status", orderH.UpdateStatus)
		r.Get("/api/orders/{orderID}/audit", orderH.ListAudit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret, "admin"))

		r.Post("/api/notifications/announce", notifH.Announce)
		r.Post("/api/notifications/broadcast", notifH.Broadcast)
		r.Post("/api/promos", promoH.Issue)
	})

	return r
}
