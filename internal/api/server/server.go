package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "voice2text/docs" // Generated swagger docs
	"voice2text/internal/api/middleware"
	v1routes "voice2text/internal/api/v1/routes"
	"voice2text/internal/api/v1/services"
	"voice2text/internal/app/metrics"
	"voice2text/internal/config"
)

// Server represents the API server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	orchestrator services.Orchestrator,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Server {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	var recorder services.Recorder
	if m != nil {
		router.Use(middleware.Metrics(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
		recorder = m
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	serviceContainer := &v1routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(orchestrator, recorder),
	}
	v1routes.RegisterRoutes(router, serviceContainer)

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Everything else is served from the static assets directory.
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start listens in the background. Listener failures are sent on the returned
// channel, which is closed once the server stops.
func (s *Server) Start() <-chan error {
	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
		zap.String("static_dir", s.config.StaticDir),
	)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server failed", zap.Error(err))
			errCh <- err
		}
	}()
	return errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
