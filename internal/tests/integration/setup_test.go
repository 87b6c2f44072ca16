package integration

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/internal/routes"
	"github.com/quicklinks/quicklinks-backend/internal/seeds"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	logger.Init("test")
	config.AppConfig = &config.Config{
		Port:          "3000",
		SessionSecret: "test_secret_key_12345",
		AdminEmail:    "admin@quicklinks.com",
		AdminPassword: "admin123",
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	database.DB = db

	database.DB.Migrator().DropTable(&models.User{}, &models.Link{}, &models.Click{})
	if err := database.DB.AutoMigrate(&models.User{}, &models.Link{}, &models.Click{}); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	if err := seeds.EnsureAdminUser(); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	return db
}

// setupRouter wires the same routes as cmd/server
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		routes.RegisterAuthRoutes(auth)

		routes.RegisterLinkRoutes(api)
		routes.RegisterAdminRoutes(api)

		api.GET("/health", handlers.HealthCheck)
	}

	routes.RegisterPageRoutes(r)

	return r
}
