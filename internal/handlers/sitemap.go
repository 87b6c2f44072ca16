package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
)

// SitemapEntry represents a single URL entry in the sitemap
type SitemapEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

// URLSet is the root element of the sitemap
type URLSet struct {
	XMLName xml.Name       `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []SitemapEntry `xml:"url"`
}

// GenerateSitemap lists the public marketing pages. Short links are
// deliberately excluded; they are redirects, not content.
func GenerateSitemap(c *gin.Context) {
	base := config.AppConfig.PublicBaseURL()

	var urls []SitemapEntry
	for _, p := range []string{"", "/pricing", "/features", "/signup", "/login"} {
		urls = append(urls, SitemapEntry{
			Loc:        base + p,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	output, err := xml.MarshalIndent(URLSet{URLs: urls}, "", "  ")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml")
	c.Writer.Write([]byte(xml.Header + string(output)))
}

// GenerateRobotsTXT returns the robots.txt file
func GenerateRobotsTXT(c *gin.Context) {
	robots := `User-agent: *
Allow: /
Disallow: /dashboard
Disallow: /admin
Disallow: /api

Sitemap: ` + config.AppConfig.PublicBaseURL() + `/sitemap.xml`

	c.Header("Content-Type", "text/plain")
	c.String(http.StatusOK, robots)
}
