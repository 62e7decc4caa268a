package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type Config struct {
	Address            string        `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"INFO"`
	OrderAPIAddress    string        `env:"ORDER_API_ADDRESS" envDefault:"http://localhost:5000"`
	UserAPIAddress     string        `env:"USER_API_ADDRESS" envDefault:"http://localhost:5000"`
	NotifyDBAddress    string        `env:"NOTIFY_DB_ADDRESS"`
	NotifyDBSecret     string        `env:"NOTIFY_DB_SECRET"`
	DatabaseConnection string        `env:"DATABASE_URI"`
	JWTSecret          string        `env:"JWT_SECRET" envDefault:"dontexposethis"`
	HTTPTimeout        time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	address := flag.String("a", cfg.Address, "{Host:port} for server")
	loglevel := flag.String("l", cfg.LogLevel, "Log level for server")
	orderAPI := flag.String("o", cfg.OrderAPIAddress, "Base URL of the order API")
	userAPI := flag.String("u", cfg.UserAPIAddress, "Base URL of the user directory API")
	notifyDB := flag.String("n", cfg.NotifyDBAddress, "Base URL of the realtime notification store")
	databaseConnection := flag.String("d", cfg.DatabaseConnection, "Database connection string")
	httpTimeout := flag.Duration("t", cfg.HTTPTimeout, "Timeout for outbound HTTP calls (e.g. 10s; 1m)")

	flag.Parse()

	cfg.Address = *address
	cfg.LogLevel = *loglevel
	cfg.OrderAPIAddress = *orderAPI
	cfg.UserAPIAddress = *userAPI
	cfg.NotifyDBAddress = *notifyDB
	cfg.DatabaseConnection = *databaseConnection
	cfg.HTTPTimeout = *httpTimeout

	if cfg.NotifyDBAddress == "" {
		return nil, fmt.Errorf("ENV NOTIFY_DB_ADDRESS must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("ENV JWT_SECRET must be set")
	}

	return cfg, nil
}
