package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortCodeLength is fixed; codes are drawn uniformly from the 62-character
// alphanumeric alphabet.
const ShortCodeLength = 6

// FreePlanLinkLimit is how many links a free-plan user may own.
const FreePlanLinkLimit = 3

func generateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// newShortCode generates a code that collides with neither an existing link
// nor a reserved page route. Bounded retry; after that the last candidate is
// accepted, matching the original's accepted collision risk.
func newShortCode() string {
	reserved := config.AppConfig.ReservedRouteSet()
	code := generateShortCode(ShortCodeLength)
	for i := 0; i < 5; i++ {
		var count int64
		database.DB.Model(&models.Link{}).Where("short_code = ?", code).Count(&count)
		if count == 0 && !reserved[code] {
			break
		}
		code = generateShortCode(ShortCodeLength)
	}
	return code
}

// CreateLink handles POST /api/shorten
func CreateLink(c *gin.Context) {
	var input struct {
		LongURL string `json:"longUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.LongURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL required"})
		return
	}

	userID := middleware.SessionUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var owned int64
	database.DB.Model(&models.Link{}).Where("user_id = ?", userID).Count(&owned)

	// Free plan quota: 3 links; past that the error depends on whether
	// the trial is still running.
	if user.Plan == models.PlanFree && owned >= FreePlanLinkLimit {
		now := time.Now()
		if user.TrialEnds == nil || !user.TrialEnds.After(now) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Trial expired. Please upgrade."})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Free plan limit reached. Upgrade for unlimited URLs."})
		return
	}

	code := newShortCode()

	link := models.Link{
		UserID:    userID,
		LongURL:   input.LongURL,
		ShortCode: code,
		ShortURL:  config.AppConfig.PublicBaseURL() + "/" + code,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&link).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to create short link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short link"})
		return
	}

	logger.Info().Uint("user_id", userID).Str("code", code).Msg("Short link created")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    link,
	})
}

// withClickStats fills the computed click counters for a link.
func withClickStats(link *models.Link) {
	database.DB.Model(&models.Click{}).Where("link_id = ?", link.ID).Count(&link.Clicks)
	database.DB.Model(&models.Click{}).Where("link_id = ?", link.ID).Distinct("ip").Count(&link.UniqueVisitors)
}

// ListLinks handles GET /api/urls
func ListLinks(c *gin.Context) {
	userID := middleware.SessionUserID(c)

	var links []models.Link
	if err := database.DB.Where("user_id = ?", userID).Order("id").Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}

	for i := range links {
		withClickStats(&links[i])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": links})
}

// DeleteLink handles DELETE /api/urls/:id. Clicks are intentionally not
// cascade-deleted; aggregation joins through the link id, so orphaned rows
// are never surfaced.
func DeleteLink(c *gin.Context) {
	userID := middleware.SessionUserID(c)
	id := c.Param("id")

	var link models.Link
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}

	if err := database.DB.Delete(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
