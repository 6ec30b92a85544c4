package setup

import (
	"context"
	"log"

	"github.com/redis/rueidis"
	"github.com/wilyamx/thinkittwice/internal/database"
	"github.com/wilyamx/thinkittwice/internal/feed"
	"github.com/wilyamx/thinkittwice/internal/redis"
	"github.com/wilyamx/thinkittwice/internal/setup/config"
	"github.com/wilyamx/thinkittwice/internal/trend"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config // Application configuration
	Logger       *zap.Logger    // Main application logger
	DBLogger     *zap.Logger    // Database-specific logger
	DB           database.Client
	RedisManager *redis.Manager
	TrendClient  rueidis.Client // Redis client backing the trend cache
	Feed         *feed.Service  // Feed query service
	pprofServer  *pprofServer   // Debug HTTP server for pprof
}

// InitializeApp bootstraps all application dependencies in the correct
// order, ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, autoMigrate bool) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := NewLoggers(&cfg.Debug)
	if err != nil {
		return nil, err
	}

	// Redis manager provides connection pools for various subsystems
	redisManager := redis.NewManager(&cfg.Redis, logger)

	// Initialize database connection
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger, autoMigrate)
	if err != nil {
		return nil, err
	}

	// Trend values live in their own Redis database
	trendClient, err := redisManager.GetClient(redis.TrendDBIndex)
	if err != nil {
		return nil, err
	}

	feedService := feed.NewService(db, trend.NewCache(trendClient, logger), &cfg.Feed, logger)

	// Start pprof server if enabled
	var pprofSrv *pprofServer

	if cfg.Debug.EnablePprof {
		srv, err := startPprofServer(cfg.Debug.PprofPort, logger)
		if err != nil {
			logger.Error("Failed to start pprof server", zap.Error(err))
		} else {
			pprofSrv = srv

			logger.Warn("pprof debugging endpoint enabled - this should not be used in production!")
		}
	}

	// Bundle all initialized components
	return &App{
		Config:       cfg,
		Logger:       logger,
		DBLogger:     dbLogger,
		DB:           db,
		RedisManager: redisManager,
		TrendClient:  trendClient,
		Feed:         feedService,
		pprofServer:  pprofSrv,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
func (s *App) Cleanup(ctx context.Context) {
	// Shutdown pprof server if running
	if s.pprofServer != nil {
		if err := s.pprofServer.srv.Shutdown(ctx); err != nil {
			s.Logger.Error("Failed to shutdown pprof server", zap.Error(err))
		}

		s.pprofServer.listener.Close()
	}

	// Sync buffered logs before shutdown
	if err := s.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	if err := s.DBLogger.Sync(); err != nil {
		log.Printf("Failed to sync DB logger: %v", err)
	}

	// Close database connections
	if err := s.DB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	// Close Redis connections last as other components might need it during cleanup
	s.RedisManager.Close()
}
