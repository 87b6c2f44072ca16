package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
)

// Resolve handles GET /:shortCode. Reserved page names defer to page
// routing; anything else is treated as a short code. Every successful
// resolution records exactly one click before redirecting.
func Resolve(c *gin.Context) {
	code := c.Param("shortCode")

	if config.AppConfig.ReservedRouteSet()[code] {
		ServePage(c, code+".html")
		return
	}

	var link models.Link
	if err := database.DB.Where("short_code = ?", code).First(&link).Error; err != nil {
		c.String(http.StatusNotFound, "URL not found")
		return
	}

	click := models.Click{
		LinkID:    link.ID,
		ClickedAt: time.Now(),
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}
	if err := database.DB.Create(&click).Error; err != nil {
		// The visitor still gets their redirect; the click is lost
		logger.Error().Err(err).Uint("link_id", link.ID).Msg("Failed to record click")
	}

	c.Redirect(http.StatusMovedPermanently, link.LongURL)
}
