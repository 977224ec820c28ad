package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/questlog/questlog/internal/api/handler"
	"github.com/questlog/questlog/internal/api/middleware"
	"github.com/questlog/questlog/internal/core/service"
	"github.com/questlog/questlog/internal/infrastructure/config"
	"github.com/questlog/questlog/internal/infrastructure/db/jsonstore"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *jsonstore.Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("questlog"))

	// --- Dependencies ---
	userRepo := jsonstore.NewUserRepository(store)
	taskRepo := jsonstore.NewTaskRepository(store)
	characterRepo := jsonstore.NewCharacterRepository(store)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTL)*time.Second)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	characterService := service.NewCharacterService(characterRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)
	characterHandler := handler.NewCharacterHandler(characterService)
	requireAuth := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/user/me", userHandler.Me, requireAuth)
	e.PUT("/user/me/update", userHandler.Update, requireAuth)

	e.GET("/tasks", taskHandler.List, requireAuth)
	e.POST("/tasks", taskHandler.Create, requireAuth)
	e.DELETE("/tasks/:id", taskHandler.Delete, requireAuth)

	e.GET("/characters", characterHandler.List, requireAuth)
	e.POST("/characters", characterHandler.Create, requireAuth)
	e.DELETE("/characters/:id", characterHandler.Delete, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the store readable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
