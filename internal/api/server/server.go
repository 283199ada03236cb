package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/propchain/propchain-api/internal/adapter"
	"github.com/propchain/propchain-api/internal/api/middleware"
	"github.com/propchain/propchain-api/internal/api/rest"
	"github.com/propchain/propchain-api/internal/api/shared/executor"
	"github.com/propchain/propchain-api/internal/logger"
	"github.com/propchain/propchain-api/internal/providers/ethereum"
	"github.com/propchain/propchain-api/internal/reconcile"
	"github.com/propchain/propchain-api/internal/store"
	"github.com/propchain/propchain-api/internal/tokenize"
)

// Config holds the server configuration
type Config struct {
	Debug         bool
	Host          string
	Port          int
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
	JWTPublicKey  string
	APIKeys       []string
	QuoteCacheTTL time.Duration
	ConfirmTx     bool
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	chain      ethereum.ChainReader
	estimator  ethereum.ChainEstimator
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, s store.Store, chain ethereum.ChainReader, estimator ethereum.ChainEstimator, clock adapter.Clock) *Server {
	return &Server{
		config:    cfg,
		store:     s,
		chain:     chain,
		estimator: estimator,
		clock:     clock,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Assemble the domain services behind the shared executor
	coordinator := tokenize.NewCoordinator(s.store, s.chain, s.clock, s.config.ConfirmTx)
	syncer := reconcile.NewSyncer(s.chain, s.store, s.store)
	exec := executor.NewExecutor(s.store, s.chain, s.estimator, coordinator, syncer, s.clock, s.config.QuoteCacheTTL)

	// Create REST handler and routes
	restHandler := rest.NewHandler(s.config.Debug, exec)
	rest.SetupRoutes(router, restHandler, middleware.AuthConfig{
		JWTPublicKey: s.config.JWTPublicKey,
		APIKeys:      s.config.APIKeys,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
