package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
)

// HealthCheck handles GET /api/health
func HealthCheck(c *gin.Context) {
	var users, urls, clicks int64
	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Link{}).Count(&urls)
	database.DB.Model(&models.Click{}).Count(&clicks)

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"users":     users,
		"urls":      urls,
		"clicks":    clicks,
	})
}
