package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())

	admin.GET("/stats", handlers.AdminGetStats)
	admin.GET("/users", handlers.AdminListUsers)
	admin.GET("/urls", handlers.AdminListURLs)
	admin.PUT("/users/:id/plan", handlers.AdminSetUserPlan)
}
