// Package patternsapi exposes the comparison workload over HTTP twice:
// once on net/http and once on gin. Both variants share the same core
// packages and routes so the frameworks can be measured against each
// other on identical behavior.
package patternsapi

import (
	"time"

	"github.com/fwbench/patterns-api/auth"
	"github.com/fwbench/patterns-api/checkout"
	"github.com/fwbench/patterns-api/config"
	"github.com/fwbench/patterns-api/store"
)

// App bundles the shared state both server variants serve from.
type App struct {
	Store    *store.Store
	Facade   *checkout.Facade
	Tokens   *auth.TokenRegistry
	Limiter   *ClientLimiter
	startedAt time.Time
}

// NewApp wires the application from the loaded configuration.
func NewApp(st *store.Store) *App {
	cfg := config.Config
	app := &App{
		Store:     st,
		Facade:    checkout.NewFacadeWithRates(st, cfg.Checkout.ShippingFlatRate, cfg.Checkout.TaxRate),
		Tokens:    auth.NewTokenRegistry(time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute),
		startedAt: time.Now(),
	}
	if cfg.RateLimit.Enabled {
		app.Limiter = NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	return app
}
