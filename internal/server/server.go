// Package server exposes the evaluator over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/abhisek/skilleval/internal/logger"
)

// Config configures the HTTP transport.
type Config struct {
	Addr        string
	Mode        string // gin mode
	CORSOrigins []string
	JWTSecret   string
	Issuer      string
	AdminRole   string
	ServiceName string
}

// Deps are the services behind the routes.
type Deps struct {
	Assessments Assessments
	Concepts    Concepts
	Reports     Reports
	DB          Pinger
	Logger      *logger.Logger
}

// Server is the HTTP server.
type Server struct {
	Engine *gin.Engine
	addr   string
	log    *logger.Logger
}

// New builds the router.
func New(cfg Config, deps Deps) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	if cfg.AdminRole == "" {
		cfg.AdminRole = "admin"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "skilleval"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(RequestLogger(log))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := &handlers{
		assessments: deps.Assessments,
		concepts:    deps.Concepts,
		reports:     deps.Reports,
		db:          deps.DB,
	}

	r.GET("/healthz", h.health)

	api := r.Group("/api/v1")
	api.Use(Auth(cfg.JWTSecret, cfg.Issuer))
	{
		api.GET("/concepts", h.listConcepts)

		api.POST("/assessments", h.start)
		api.GET("/assessments", h.list)
		api.GET("/assessments/active", h.active)
		api.GET("/assessments/:id", h.result)
		api.POST("/assessments/:id/submit", h.submit)
	}

	admin := api.Group("/admin")
	admin.Use(RequireRole(cfg.AdminRole))
	{
		admin.GET("/assessments/stats", h.stats)
		admin.PUT("/concepts/:key", h.registerConcept)
	}

	return &Server{Engine: r, addr: cfg.Addr, log: log}
}

// Run serves until ctx ends, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
