package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/config"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/middleware"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/quicklinks/quicklinks-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing and resets all
// tables so each test starts from a clean slate.
func SetupTestDB(t *testing.T) {
	logger.Init("test")
	config.AppConfig = &config.Config{
		Port:          "3000",
		SessionSecret: "test_secret_key_12345",
		AdminEmail:    "admin@quicklinks.com",
		AdminPassword: "admin123",
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	database.DB = db

	database.DB.Migrator().DropTable(&models.User{}, &models.Link{}, &models.Click{})
	if err := database.DB.AutoMigrate(&models.User{}, &models.Link{}, &models.Click{}); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}
}

func createTestUser(t *testing.T, email, password string, plan models.Plan, trialEnds *time.Time) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Email:     email,
		Password:  string(hash),
		Name:      "Test User",
		Role:      models.RoleUser,
		Plan:      plan,
		TrialEnds: trialEnds,
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// jsonContext builds a test context carrying a JSON body and, when userID is
// non-zero, an authenticated session.
func jsonContext(t *testing.T, method, path string, body interface{}, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if userID != 0 {
		c.Set("userId", userID)
	}
	return c, w
}

// serveHandler runs a single handler behind the error middleware, so
// AppError values attached via c.Error are mapped to responses the same
// way the real server maps them.
func serveHandler(t *testing.T, method, route, path string, body interface{}, userID uint, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	if userID != 0 {
		r.Use(func(c *gin.Context) { c.Set("userId", userID) })
	}
	r.Handle(method, route, handler)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func countRows(model interface{}) int64 {
	var n int64
	database.DB.Model(model).Count(&n)
	return n
}
