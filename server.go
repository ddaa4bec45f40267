package patternsapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/fwbench/patterns-api/config"
)

// StdRoutes builds the net/http route table.
func (a *App) StdRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", a.route("/api/health", a.handleHealth))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/users", a.route("/api/v1/users", a.handleCreateUser))
	mux.HandleFunc("GET /api/v1/users", a.route("/api/v1/users", a.handleListUsers))
	mux.HandleFunc("GET /api/v1/users/{id}", a.route("/api/v1/users/:id", a.handleGetUser))
	mux.HandleFunc("POST /api/v1/login", a.route("/api/v1/login", a.handleLogin))

	mux.HandleFunc("POST /api/v1/products", a.route("/api/v1/products", a.handleCreateProduct))
	mux.HandleFunc("GET /api/v1/products", a.route("/api/v1/products", a.handleListProducts))
	mux.HandleFunc("GET /api/v1/products/{id}", a.route("/api/v1/products/:id", a.handleGetProduct))

	mux.HandleFunc("POST /api/v1/orders", a.route("/api/v1/orders", a.handleCreateOrder))
	mux.HandleFunc("GET /api/v1/orders/{id}", a.route("/api/v1/orders/:id", a.handleGetOrder))

	mux.HandleFunc("POST /api/v1/payments", a.route("/api/v1/payments", a.handleCreatePayment))
	mux.HandleFunc("POST /api/v1/checkout", a.route("/api/v1/checkout", a.handleCheckout))
	return mux
}

// StartStdServer serves the net/http variant in the background and
// returns the server for shutdown handling.
func StartStdServer(a *App) *http.Server {
	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.StdRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("net/http server listening on %s", addr)
	return server
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// given servers.
func HandleGracefulShutdown(servers ...*http.Server) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, server := range servers {
		if server == nil {
			continue
		}
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("server shutdown error: %v", err)
		} else {
			log.Info("server shut down successfully")
		}
	}
}
