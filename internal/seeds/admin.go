package seeds

import (
	"time"

	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdminUser creates the bootstrap admin on first start. Exactly one
// admin exists per deployment; if one is already present it is left alone,
// even when ADMIN_EMAIL has changed since.
func EnsureAdminUser() error {
	var admin models.User
	err := database.DB.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		logger.Info().Str("email", admin.Email).Msg("Admin user found")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Email:     config.AppConfig.AdminEmail,
		Password:  string(hash),
		Name:      "Admin",
		Role:      models.RoleAdmin,
		Plan:      models.PlanUnlimited,
		TrialEnds: nil,
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info().Str("email", admin.Email).Msg("Admin user created")
	return nil
}
