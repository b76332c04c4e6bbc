package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/cumplia/compliance-api/internal/api/handler"
	"github.com/cumplia/compliance-api/internal/api/middleware"
	"github.com/cumplia/compliance-api/internal/core/domain"
	"github.com/cumplia/compliance-api/internal/core/service"
	"github.com/cumplia/compliance-api/internal/infrastructure/config"
	"github.com/cumplia/compliance-api/internal/infrastructure/db/postgres"
	"github.com/cumplia/compliance-api/internal/infrastructure/db/redis"
	"github.com/cumplia/compliance-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// jwtSecret is the resolved signing secret (main decides whether the dev
// fallback is acceptable before we get here).
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("compliance"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	tokens := token.NewService(jwtSecret)
	guard := domain.NewRootGuard(cfg.RootEmail)
	limiter := redis.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, guard, log)

	authHandler := handler.NewAuthHandler(authService, limiter, log)
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyRepo)

	authMW := middleware.Auth(tokens)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/change-password", authHandler.ChangePassword, authMW)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, adminMW)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.GET("/users", userHandler.List)
	admin.GET("/companies", companyHandler.List)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
