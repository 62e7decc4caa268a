package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohanmgr130/Cafeteria-sub000/internal/logger"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/notification"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/order"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/orderapi"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/promo"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/reward"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/router"
	storage "github.com/rohanmgr130/Cafeteria-sub000/internal/storage/postgres"
	"github.com/rohanmgr130/Cafeteria-sub000/internal/userdir"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := storage.NewPostgresStorage(cfg.DatabaseConnection)
	if err != nil {
		log.Fatalf("Failed to initialize Postgres storage: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close storage: %v", err)
		}
	}()

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	orders := &orderapi.HTTPClient{
		Client:  httpClient,
		Address: cfg.OrderAPIAddress,
	}
	users := &userdir.HTTPClient{
		Client:  httpClient,
		Address: cfg.UserAPIAddress,
	}
	notifyStore := &notification.RTDBStore{
		Client:  httpClient,
		Address: cfg.NotifyDBAddress,
		Secret:  cfg.NotifyDBSecret,
	}

	dispatcher := notification.NewDispatcher(notifyStore, users)
	granter := reward.NewGranter(dispatcher)

	wf := order.NewWorkflow(orders, dispatcher, granter, store)
	orderHandler := order.NewHandler(wf, store)

	notifHandler := notification.NewHandler(dispatcher)

	promoSvc := promo.NewService(store, dispatcher)
	promoHandler := promo.NewHandler(promoSvc)

	r := router.NewRouter(orderHandler, notifHandler, promoHandler, []byte(cfg.JWTSecret))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}
