package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/errors"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
)

// AdminGetStats handles GET /api/admin/stats
func AdminGetStats(c *gin.Context) {
	var totalUsers, paidUsers, totalUrls, totalClicks, newUsersToday int64

	database.DB.Model(&models.User{}).Where("role <> ?", models.RoleAdmin).Count(&totalUsers)
	database.DB.Model(&models.User{}).Where("plan IN ?", models.PaidPlans).Count(&paidUsers)
	database.DB.Model(&models.Link{}).Count(&totalUrls)
	database.DB.Model(&models.Click{}).Count(&totalClicks)

	// Calendar day in server-local time
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	database.DB.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startOfDay, startOfDay.AddDate(0, 0, 1)).
		Count(&newUsersToday)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalUsers":    totalUsers,
			"paidUsers":     paidUsers,
			"totalUrls":     totalUrls,
			"totalClicks":   totalClicks,
			"newUsersToday": newUsersToday,
			"mrr":           paidUsers * models.MonthlyPricePerPaidUser,
		},
	})
}

// AdminListUsers handles GET /api/admin/users
func AdminListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Where("role <> ?", models.RoleAdmin).Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	data := make([]gin.H, 0, len(users))
	for _, user := range users {
		var totalUrls, totalClicks int64
		database.DB.Model(&models.Link{}).Where("user_id = ?", user.ID).Count(&totalUrls)
		database.DB.Model(&models.Click{}).
			Joins("JOIN links ON links.id = clicks.link_id").
			Where("links.user_id = ?", user.ID).
			Count(&totalClicks)

		data = append(data, gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"name":         user.Name,
			"role":         user.Role,
			"plan":         user.Plan,
			"trial_ends":   user.TrialEnds,
			"created_at":   user.CreatedAt,
			"last_login":   user.LastLogin,
			"total_urls":   totalUrls,
			"total_clicks": totalClicks,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// AdminListURLs handles GET /api/admin/urls
func AdminListURLs(c *gin.Context) {
	var links []models.Link
	if err := database.DB.Order("id").Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch urls"})
		return
	}

	data := make([]gin.H, 0, len(links))
	for _, link := range links {
		// A missing owner is tolerated, not an error
		userEmail := "Unknown"
		var owner models.User
		if err := database.DB.Select("email").First(&owner, "id = ?", link.UserID).Error; err == nil {
			userEmail = owner.Email
		}

		var clicks int64
		database.DB.Model(&models.Click{}).Where("link_id = ?", link.ID).Count(&clicks)

		data = append(data, gin.H{
			"id":         link.ID,
			"long_url":   link.LongURL,
			"short_code": link.ShortCode,
			"shortUrl":   link.ShortURL,
			"created_at": link.CreatedAt,
			"user_email": userEmail,
			"clicks":     clicks,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// AdminSetUserPlan handles PUT /api/admin/users/:id/plan. The plan value is
// stored verbatim; the original accepted anything and so does this.
func AdminSetUserPlan(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Plan string `json:"plan"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan required"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		c.Error(errors.NotFound("User not found"))
		return
	}

	if err := database.DB.Model(&user).Update("plan", input.Plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Str("plan", input.Plan).Msg("User plan updated")

	c.JSON(http.StatusOK, gin.H{"success": true})
}
