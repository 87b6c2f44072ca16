package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/errors"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
	"github.com/quicklinks/quicklinks-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// TrialLengthDays is granted to every new signup.
const TrialLengthDays = 30

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// setSessionCookie issues the signed session token for the user and attaches
// it to the response. The token is also returned in the body so API clients
// can use it as a bearer token instead.
func setSessionCookie(c *gin.Context, user *models.User) (string, error) {
	token, _, err := utils.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return "", err
	}
	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionLifetime.Seconds()), "/", "", false, true)
	return token, nil
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
}

func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.Error(errors.Conflict("Email already registered"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	now := time.Now()
	trialEnds := now.AddDate(0, 0, TrialLengthDays)

	user := models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		Name:      input.Name,
		Role:      models.RoleUser,
		Plan:      models.PlanFree,
		TrialEnds: &trialEnds,
		CreatedAt: now,
		LastLogin: now,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		logger.Warn().Err(err).Str("email", input.Email).Msg("Signup failed")
		c.Error(errors.Conflict("Email already registered"))
		return
	}

	token, err := setSessionCookie(c, &user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Msg("User signed up")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"plan":      user.Plan,
			"trialDays": TrialLengthDays,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: user not found")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logger.Warn().Str("email", input.Email).Msg("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now()
	database.DB.Model(&user).Update("last_login", now)

	token, err := setSessionCookie(c, &user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
			"plan":  user.Plan,
			"trial": user.Trial(now),
		},
	})
}

// Logout destroys the session unconditionally: the token's jti is revoked
// for its remaining lifetime and the cookie is cleared. Always succeeds.
func Logout(c *gin.Context) {
	clearSessionCookie(c)

	claimsVal, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	claims, ok := claimsVal.(*utils.SessionClaims)
	if !ok || claims == nil || claims.ID == "" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if exp := claims.ExpiresAt; exp != nil {
		if ttl := time.Until(exp.Time); ttl > 0 {
			if err := database.RevokeSession(claims.ID, ttl); err != nil {
				logger.Error().Err(err).Str("jti", claims.ID).Msg("Failed to revoke session")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetCurrentUser(c *gin.Context) {
	userID := middleware.SessionUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"role":      user.Role,
		"plan":      user.Plan,
		"trial":     user.Trial(time.Now()),
		"createdAt": user.CreatedAt,
	})
}
