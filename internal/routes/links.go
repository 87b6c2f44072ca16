package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
)

func RegisterLinkRoutes(r gin.IRouter) {
	r.POST("/shorten", middleware.AuthRequired(), handlers.CreateLink)
	r.GET("/urls", middleware.AuthRequired(), handlers.ListLinks)
	r.DELETE("/urls/:id", middleware.AuthRequired(), handlers.DeleteLink)
}
