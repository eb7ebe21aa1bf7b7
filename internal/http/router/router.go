package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	_ "github.com/datalab-ge/datalab-api/docs" // registers the swagger spec
	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/database"
	"github.com/datalab-ge/datalab-api/internal/http/handler"
	"github.com/datalab-ge/datalab-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	ServiceRequests *handler.ServiceRequestHandler
	Contact         *handler.ContactHandler
	Testimonials    *handler.TestimonialHandler
	Pricing         *handler.PricingHandler
	Analytics       *handler.AnalyticsHandler
	Auth            *handler.AuthHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	cache          cache.Cache
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	handlers       Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	c cache.Cache,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		cache:          c,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		handlers:       handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	r.Get("/health", rt.health)
	r.Get("/health/db", rt.healthDB)
	r.Get("/health/ready", rt.healthReady)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	h := rt.handlers
	admin := rt.authMiddleware.Authenticate

	r.Route("/api", func(r chi.Router) {
		r.With(rt.rateLimiter.LimitPublicForms).Post("/auth/token", h.Auth.Token)

		r.Route("/service-requests", func(r chi.Router) {
			r.With(rt.rateLimiter.LimitPublicForms).Post("/", h.ServiceRequests.Create)
			r.Get("/{case_id}", h.ServiceRequests.GetCase)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/", h.ServiceRequests.List)
				r.Get("/archived", h.ServiceRequests.ListArchived)
				r.Put("/{id}", h.ServiceRequests.Update)
				r.Put("/{id}/archive", h.ServiceRequests.Archive)
				r.Get("/{id}/history", h.ServiceRequests.History)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(rt.rateLimiter.LimitPublicForms).Post("/", h.Contact.Create)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/", h.Contact.List)
				r.Get("/stats", h.Contact.Stats)
				r.Put("/{id}/status", h.Contact.UpdateStatus)
			})
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", h.Testimonials.ListActive)
			r.Get("/{id}/image", h.Testimonials.Image)

			r.Group(func(r chi.Router) {
				r.Use(admin)
				r.Get("/all", h.Testimonials.ListAll)
				r.Post("/", h.Testimonials.Create)
				r.Put("/{id}", h.Testimonials.Update)
				r.Put("/{id}/image", h.Testimonials.UploadImage)
			})
		})

		r.Route("/price-estimate", func(r chi.Router) {
			r.Post("/", h.Pricing.Estimate)
			r.Get("/pricing-info", h.Pricing.Info)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(admin)
			r.Get("/metrics", h.Analytics.Metrics)
			r.Get("/export", h.Analytics.Export)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// health is the liveness probe
func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// healthDB reports database connectivity and pool statistics
func (rt *Router) healthDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := database.Ping(ctx, rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	body := map[string]interface{}{
		"status":  "healthy",
		"service": "database",
	}
	if stats, err := database.Stats(rt.db); err == nil {
		body["stats"] = map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		}
	}
	writeJSON(w, http.StatusOK, body)
}

// healthReady is the readiness probe covering every dependency
func (rt *Router) healthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	checks := make(map[string]interface{})
	allHealthy := true

	check := func(name string, err error) {
		if err != nil {
			rt.logger.Error("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			allHealthy = false
			return
		}
		checks[name] = map[string]interface{}{"status": "healthy"}
	}
	check("database", database.Ping(ctx, rt.db))
	check("cache", rt.cache.Ping(ctx))

	status, code := "healthy", http.StatusOK
	if !allHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}
