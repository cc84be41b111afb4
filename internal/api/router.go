package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/brightlane/site-api/internal/api/handler"
	"github.com/brightlane/site-api/internal/api/middleware"
	"github.com/brightlane/site-api/internal/core/service"
	"github.com/brightlane/site-api/internal/infrastructure/config"
	"github.com/brightlane/site-api/internal/infrastructure/db/postgres"
	"github.com/brightlane/site-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, files *storage.DiskStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit(cfg.MaxBodySize))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 0)
	authHandler := handler.NewAuthHandler(authService)

	contactRepo := postgres.NewContactRepository(db)
	contactService := service.NewContactService(contactRepo, log)
	contactHandler := handler.NewContactHandler(contactService)

	newsRepo := postgres.NewNewsRepository(db)
	newsService := service.NewNewsService(newsRepo, files, log)
	newsHandler := handler.NewNewsHandler(newsService)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)

	// --- Contact routes ---
	e.POST("/api/contacts", contactHandler.Create)
	e.GET("/api/contacts/admin/", contactHandler.List, requireAuth)

	// --- News routes ---
	e.GET("/api/news", newsHandler.List)
	e.GET("/api/news/", newsHandler.List)
	e.POST("/api/news/admin", newsHandler.Create, requireAuth)
	e.DELETE("/api/news/admin/:id", newsHandler.Delete, requireAuth)

	// --- Uploaded attachments (public, no access control) ---
	e.Static("/uploads", files.Dir())

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
