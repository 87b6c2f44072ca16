package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"GO_ENV"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	FrontendURL   string `mapstructure:"FRONTEND_URL"`

	// Bootstrap admin credentials
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// Public origin used to build absolute short URLs
	BaseURL      string `mapstructure:"BASE_URL"`
	PublicDomain string `mapstructure:"RAILWAY_PUBLIC_DOMAIN"`

	// Session revocation store (optional)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// Comma-separated short codes that belong to page routes, never to links
	ReservedRoutes string `mapstructure:"RESERVED_ROUTES"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Register keys so AutomaticEnv picks them up without a .env file
	for _, key := range []string{
		"PORT", "GO_ENV", "DATABASE_URL", "SESSION_SECRET", "FRONTEND_URL",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "BASE_URL", "RAILWAY_PUBLIC_DOMAIN",
		"REDIS_ADDR", "REDIS_PASSWORD", "RESERVED_ROUTES",
	} {
		viper.SetDefault(key, "")
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if AppConfig.Port == "" {
		AppConfig.Port = "3000"
	}
	if AppConfig.SessionSecret == "" {
		AppConfig.SessionSecret = "quicklinks-secret-key-2024"
	}
	if AppConfig.AdminEmail == "" {
		AppConfig.AdminEmail = "admin@quicklinks.com"
	}
	if AppConfig.AdminPassword == "" {
		AppConfig.AdminPassword = "admin123"
	}
}

// PublicBaseURL resolves the origin used when building short URLs:
// explicit BASE_URL wins, then a platform-provided public domain,
// then the local listen address.
func (c *Config) PublicBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.PublicDomain != "" {
		return "https://" + c.PublicDomain
	}
	return fmt.Sprintf("http://localhost:%s", c.Port)
}

// DefaultReservedRoutes are page routes a short code must never shadow.
var DefaultReservedRoutes = []string{"login", "signup", "dashboard", "admin", "pricing", "features"}

// ReservedRouteSet returns the reserved short codes as a lookup set.
func (c *Config) ReservedRouteSet() map[string]bool {
	routes := DefaultReservedRoutes
	if c.ReservedRoutes != "" {
		routes = strings.Split(c.ReservedRoutes, ",")
	}
	set := make(map[string]bool, len(routes))
	for _, r := range routes {
		r = strings.TrimSpace(r)
		if r != "" {
			set[r] = true
		}
	}
	return set
}
