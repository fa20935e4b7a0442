package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/config"
	"github.com/elitecards/admin-console/internal/api"
	"github.com/elitecards/admin-console/internal/middleware"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/session"
)

// Server represents the console HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *log.Logger
}

// New assembles the router, middleware, and handlers.
func New(cfg *config.Config, gw *platform.Client, sessions session.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.SetupAPI(router, gw, sessions, logger)

	return &Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.MaxAge = 24 * time.Hour
	return corsCfg
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Printf("console listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
