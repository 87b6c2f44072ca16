package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/models"
)

// PublicDir holds the static frontend pages.
var PublicDir = "public"

// ServePage serves a page from the public directory with an explicit HTML
// content type.
func ServePage(c *gin.Context, name string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.File(filepath.Join(PublicDir, name))
}

func hasSession(c *gin.Context) bool {
	_, exists := c.Get("userId")
	return exists
}

func isAdminSession(c *gin.Context) bool {
	role, exists := c.Get("userRole")
	return exists && role == string(models.RoleAdmin)
}

// Home serves the dashboard for signed-in users, the landing page otherwise.
func Home(c *gin.Context) {
	if hasSession(c) {
		ServePage(c, "dashboard.html")
		return
	}
	ServePage(c, "index.html")
}

func LoginPage(c *gin.Context) {
	ServePage(c, "login.html")
}

func SignupPage(c *gin.Context) {
	ServePage(c, "signup.html")
}

func PricingPage(c *gin.Context) {
	ServePage(c, "pricing.html")
}

func FeaturesPage(c *gin.Context) {
	ServePage(c, "features.html")
}

func DashboardPage(c *gin.Context) {
	if !hasSession(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	ServePage(c, "dashboard.html")
}

func AdminPage(c *gin.Context) {
	if !hasSession(c) || !isAdminSession(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	ServePage(c, "admin.html")
}
