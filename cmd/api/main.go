package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datalab-ge/datalab-api/docs"
	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/database"
	"github.com/datalab-ge/datalab-api/internal/http/handler"
	"github.com/datalab-ge/datalab-api/internal/http/middleware"
	"github.com/datalab-ge/datalab-api/internal/http/router"
	"github.com/datalab-ge/datalab-api/internal/jobs"
	"github.com/datalab-ge/datalab-api/internal/logger"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/datalab-ge/datalab-api/internal/service"
	"github.com/datalab-ge/datalab-api/internal/storage"
	"go.uber.org/zap"
)

// @title DataLab API
// @version 1.0
// @description Service requests, contact messages and testimonials for the DataLab data-recovery service

// @contact.name DataLab Support
// @contact.email info@datalab.ge

// @host localhost:8001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token from /auth/token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Admin API key

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	switch basicCfg.App.Environment {
	case "production":
		docs.SwaggerInfo.Host = "api.datalab.ge"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In staging/production with USE_AZURE_KEY_VAULT=true secrets come from Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	collectionCache, err := cache.New(&cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer collectionCache.Close()

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTLDuration())
	if cfg.Auth.APIKey == "" {
		log.Warn("ADMIN_API_KEY not set, admin endpoints will reject every request")
	}
	authMiddleware := auth.NewMiddleware(cfg.Auth.APIKey, tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Repositories
	serviceRequestRepo := repository.NewServiceRequestRepository(db)
	statusHistoryRepo := repository.NewStatusHistoryRepository(db)
	caseSequenceRepo := repository.NewCaseSequenceRepository(db)
	contactMessageRepo := repository.NewContactMessageRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	// Services
	caseNumberService := service.NewCaseNumberService(caseSequenceRepo, log)
	serviceRequestService := service.NewServiceRequestService(serviceRequestRepo, statusHistoryRepo, caseNumberService, collectionCache, log)
	contactService := service.NewContactService(contactMessageRepo, collectionCache, log)
	testimonialService := service.NewTestimonialService(testimonialRepo, fileStorage, collectionCache, log)
	analyticsService := service.NewAnalyticsService(serviceRequestService, testimonialService, log)

	handlers := router.Handlers{
		ServiceRequests: handler.NewServiceRequestHandler(serviceRequestService, log),
		Contact:         handler.NewContactHandler(contactService, log),
		Testimonials:    handler.NewTestimonialHandler(testimonialService, cfg.Storage.MaxUploadSizeMB, log),
		Pricing:         handler.NewPricingHandler(log),
		Analytics:       handler.NewAnalyticsHandler(analyticsService, log),
		Auth:            handler.NewAuthHandler(authMiddleware, tokens, log),
	}

	var scheduler *jobs.Scheduler
	if cfg.Jobs.AutoArchiveEnabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterAutoArchiveJob(
			scheduler,
			serviceRequestService,
			cfg.Jobs.AutoArchiveCron,
			cfg.Jobs.AutoArchiveAfterDays,
			cfg.Jobs.TimeoutDuration(),
			log,
		); err != nil {
			return fmt.Errorf("failed to register auto-archive job: %w", err)
		}
		scheduler.Start()
		log.Info("Scheduler started", zap.Strings("jobs", scheduler.JobNames()))
	}

	rt := router.NewRouter(cfg, log, db, collectionCache, authMiddleware, rateLimiter, handlers)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
