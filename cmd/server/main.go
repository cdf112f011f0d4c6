package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"filedrive/internal/auth"
	"filedrive/internal/config"
	"filedrive/internal/database/migrations"
	"filedrive/internal/handler"
	"filedrive/internal/middleware"
	"filedrive/internal/repository/postgres"
	"filedrive/internal/service"
	"filedrive/internal/service/llm"
	"filedrive/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"blob_backend", cfg.BlobBackend,
	)

	// Apply schema migrations before opening the serving pool
	if cfg.MigrateOnStart {
		if err := migrations.Run(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("database migrations applied")
	}

	// Token verifier; in dev the X-User-ID header may stand in for a token
	var verifier auth.TokenVerifier
	if cfg.JWKSURL != "" {
		v, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create token verifier: %v", err)
		}
		defer v.Close()
		verifier = v
	} else if cfg.Environment == "prod" {
		log.Fatal("AUTH_JWKS_URL is required in prod")
	}

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Blob store for uploads
	blobs, err := storage.NewBlobStoreFromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}

	// Completion provider for insights
	provider, err := llm.SetupProvider(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup completion provider: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	dirRepo := postgres.NewDirectoryRepository(repoConfig)
	fileRepo := postgres.NewFileRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	hierarchyService := service.NewHierarchyService(dirRepo, fileRepo, txManager, logger)
	accessService := service.NewAccessService(dirRepo, logger)
	uploadService := service.NewUploadService(hierarchyService, blobs, logger)
	insightService := service.NewInsightService(hierarchyService, provider, cfg.InsightModel, cfg.InsightMaxTokens, logger)

	// Create handlers
	dirHandler := handler.NewDirectoryHandler(hierarchyService, accessService, logger)
	fileHandler := handler.NewFileHandler(hierarchyService, uploadService, logger)
	insightHandler := handler.NewInsightHandler(hierarchyService, insightService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Directory routes; fixed segments must be registered before {id}
	mux.HandleFunc("POST /api/directories", dirHandler.CreateDirectory)
	mux.HandleFunc("GET /api/directories/root", dirHandler.GetRootDirectory)
	mux.HandleFunc("GET /api/directories/most-accessed", dirHandler.MostAccessed)
	mux.HandleFunc("POST /api/directories/access", dirHandler.RecordAccess)
	mux.HandleFunc("GET /api/directories/{id}", dirHandler.GetDirectory)
	mux.HandleFunc("DELETE /api/directories/{id}", dirHandler.DeleteDirectory)
	mux.HandleFunc("POST /api/directories/{id}/summarize", insightHandler.Summarize)

	// File routes
	mux.HandleFunc("POST /api/files", fileHandler.Upload)
	mux.HandleFunc("GET /api/files/{id}", fileHandler.GetFile)
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	allowHeaderIdentity := cfg.Environment != "prod"
	root = middleware.AuthMiddleware(verifier, allowHeaderIdentity)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
