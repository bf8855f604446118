package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"florify-catalog/internal/config"
	"florify-catalog/internal/handler"
	"florify-catalog/internal/infrastructure/cache"
	"florify-catalog/internal/infrastructure/database"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/metrics"
	"florify-catalog/internal/middleware"
	"florify-catalog/internal/reconcile"
	"florify-catalog/internal/repository"
	"florify-catalog/internal/service"
	"florify-catalog/internal/session"
	"florify-catalog/internal/storage"
	"florify-catalog/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(cfg.LogLevel))

	ctx := context.Background()

	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	if cfg.RunMigrations {
		if err := database.Migrate(dbConfig, cfg.MigrationsPath); err != nil {
			logger.Fatal("Failed to run migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied", slog.String("path", cfg.MigrationsPath))
	}

	// Connect to database
	pool, err := database.NewPostgres(ctx, dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Analysis sessions live in Redis when configured, in process otherwise
	var (
		sessions    session.Store
		redisClient *redis.Client
		cachePinger handler.Pinger
	)
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Fatal("Failed to connect to redis",
				slog.String("error", err.Error()))
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
		cachePinger = cache.Pinger{Client: redisClient}
		logger.Info("Using redis session store", slog.String("addr", cfg.RedisAddr))
	} else {
		sessions = session.NewMemoryStore(cfg.SessionCacheSize, cfg.SessionTTL)
		logger.Info("Using in-process session store", slog.Int("size", cfg.SessionCacheSize))
	}

	archiver, closeArchiver := newArchiver(ctx, cfg)
	defer closeArchiver()

	// Initialize repositories
	catalogRepo := repository.NewPostgresCatalogRepository(pool, cfg.UpsertChunkSize)
	batchRepo := repository.NewPostgresBatchRepository(pool)
	auditRepo := repository.NewPostgresAuditRepository(pool)

	var engineOpts []reconcile.Option
	if cfg.CompareUnitOfMeasure {
		engineOpts = append(engineOpts, reconcile.WithUnitOfMeasure())
	}

	// Initialize services
	importService := service.NewImportService(
		catalogRepo,
		batchRepo,
		sessions,
		archiver,
		service.NewAuditLogger(auditRepo, cfg.AuditChunkSize),
		reconcile.NewEngine(engineOpts...),
		validator.NewValidator(),
		cfg.SessionTTL,
	)
	catalogService := service.NewCatalogService(catalogRepo, auditRepo)

	// Initialize handlers
	importHandler := handler.NewImportHandler(importService, catalogService, cfg.MaxUploadSize)
	productHandler := handler.NewProductHandler(catalogService)
	healthHandler := handler.NewHealthHandler(pool, cachePinger)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders(middleware.RequestIDHeader, middleware.OperatorIDHeader)
	corsConfig.AddExposeHeaders(middleware.RequestIDHeader, "Content-Disposition")
	router.Use(cors.New(corsConfig))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		imports := v1.Group("/imports")
		{
			imports.POST("/analyses", importHandler.CreateAnalysis)
			imports.GET("/analyses/:id", importHandler.GetAnalysis)
			imports.POST("/analyses/:id/confirm", middleware.Operator(), importHandler.ConfirmAnalysis)
			imports.GET("", importHandler.ListBatches)
			imports.GET("/:id", importHandler.GetBatch)
			imports.GET("/:id/audit", importHandler.ListBatchAudit)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.FindProducts)
			products.GET("/export", productHandler.ExportCatalog)
			products.GET("/:barcode", productHandler.GetProduct)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// In-flight confirmations finish under context.WithoutCancel, so give
	// them the write timeout to drain.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	metrics.LogHealthCheckMetrics(shutdownCtx, pool)
	logger.Info("Server exited")
}

// newArchiver builds the archiver selected by STORAGE_PROVIDER and returns
// a function releasing its resources.
func newArchiver(ctx context.Context, cfg *config.Config) (storage.Archiver, func()) {
	switch cfg.StorageProvider {
	case storage.ProviderGCS:
		client, err := storage.NewGCSClient(ctx, cfg.GCSCredentialsJSON)
		if err != nil {
			logger.Fatal("Failed to create gcs client",
				slog.String("error", err.Error()))
		}
		archiver := storage.NewGCSArchiver(client, cfg.GCSBucket)
		logger.Info("Archiving uploads to gcs", slog.String("bucket", cfg.GCSBucket))
		return archiver, func() {
			if err := archiver.Close(); err != nil {
				logger.Warn("Failed to close gcs client", slog.String("error", err.Error()))
			}
		}
	default:
		archiver, err := storage.NewLocalArchiver(cfg.ArchiveDir)
		if err != nil {
			logger.Fatal("Failed to create archive directory",
				slog.String("error", err.Error()))
		}
		logger.Info("Archiving uploads locally", slog.String("dir", cfg.ArchiveDir))
		return archiver, func() {}
	}
}
