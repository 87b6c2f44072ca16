package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/signup", handlers.Signup)
	r.POST("/login", handlers.Login)
	// Logout works with or without a valid session; ResolveSession only
	// surfaces the claims so the jti can be revoked
	r.POST("/logout", middleware.ResolveSession(), handlers.Logout)
	r.GET("/me", middleware.AuthRequired(), handlers.GetCurrentUser)
}
