package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/handlers"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
)

// RegisterPageRoutes wires the HTML pages and the short-code redirect.
// Static page paths take precedence over the :shortCode parameter, which is
// why reserved codes never reach link lookup through these routes.
func RegisterPageRoutes(r *gin.Engine) {
	pages := r.Group("")
	pages.Use(middleware.ResolveSession())

	pages.GET("/", handlers.Home)
	pages.GET("/login", handlers.LoginPage)
	pages.GET("/signup", handlers.SignupPage)
	pages.GET("/pricing", handlers.PricingPage)
	pages.GET("/features", handlers.FeaturesPage)
	pages.GET("/dashboard", handlers.DashboardPage)
	pages.GET("/admin", handlers.AdminPage)

	r.GET("/sitemap.xml", handlers.GenerateSitemap)
	r.GET("/robots.txt", handlers.GenerateRobotsTXT)

	// Redirect resolution: everything else at the root is a short code
	r.GET("/:shortCode", handlers.Resolve)
}
