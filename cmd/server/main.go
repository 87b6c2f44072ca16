package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/internal/routes"
	"github.com/quicklinks/quicklinks-backend/internal/seeds"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := config.AppConfig.Env
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting QuickLinks Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect Store & Session Revocation
	database.Connect()
	database.InitRedis()

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Link{},
		&models.Click{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// 2. Bootstrap the admin account
	if err := seeds.EnsureAdminUser(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create admin user")
	}
	logger.Info().
		Str("admin_email", config.AppConfig.AdminEmail).
		Str("base_url", config.AppConfig.PublicBaseURL()).
		Msg("QuickLinks ready")

	// 3. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// 4. Register Routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		routes.RegisterAuthRoutes(auth)

		routes.RegisterLinkRoutes(api)
		routes.RegisterAdminRoutes(api)

		api.GET("/health", handlers.HealthCheck)
	}

	routes.RegisterPageRoutes(r)

	// 5. Start Server with graceful shutdown
	port := config.AppConfig.Port

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
