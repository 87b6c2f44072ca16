package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicBaseURL(t *testing.T) {
	cfg := &Config{Port: "3000"}
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL())

	cfg.PublicDomain = "quicklinks.up.railway.app"
	assert.Equal(t, "https://quicklinks.up.railway.app", cfg.PublicBaseURL())

	// Explicit BASE_URL wins, trailing slash stripped
	cfg.BaseURL = "https://qlnk.io/"
	assert.Equal(t, "https://qlnk.io", cfg.PublicBaseURL())
}

func TestReservedRouteSet(t *testing.T) {
	cfg := &Config{}
	set := cfg.ReservedRouteSet()
	for _, r := range []string{"login", "signup", "dashboard", "admin", "pricing", "features"} {
		assert.True(t, set[r], r)
	}
	assert.False(t, set["abc123"])

	cfg.ReservedRoutes = "promo, docs ,"
	set = cfg.ReservedRouteSet()
	assert.True(t, set["promo"])
	assert.True(t, set["docs"])
	assert.False(t, set["login"], "configured list replaces the default")
}
