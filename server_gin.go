package patternsapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/fwbench/patterns-api/config"
)

// GinRoutes builds the gin engine with the same route surface as the
// net/http variant.
func (a *App) GinRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(a.ginObserve())
	if a.Limiter != nil {
		engine.Use(a.ginRateLimit())
	}

	engine.GET("/api/health", a.ginHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/users", a.ginCreateUser)
		v1.GET("/users", a.ginListUsers)
		v1.GET("/users/:id", a.ginGetUser)
		v1.POST("/login", a.ginLogin)

		v1.POST("/products", a.ginCreateProduct)
		v1.GET("/products", a.ginListProducts)
		v1.GET("/products/:id", a.ginGetProduct)

		v1.POST("/orders", a.ginCreateOrder)
		v1.GET("/orders/:id", a.ginGetOrder)

		v1.POST("/payments", a.ginCreatePayment)
		v1.POST("/checkout", a.ginCheckout)
	}
	return engine
}

func (a *App) ginObserve() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observeRequest(frameworkGin, c.Request.Method, path, c.Writer.Status(), time.Since(start))
		log.WithFields(log.Fields{
			"framework": frameworkGin,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
		}).Debug("request")
	}
}

func (a *App) ginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Limiter.Allow(clientKey(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// StartGinServer serves the gin variant in the background and returns the
// server for shutdown handling.
func StartGinServer(a *App) *http.Server {
	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.GinRoutes(),
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
	log.Infof("gin server listening on %s", addr)
	return server
}
