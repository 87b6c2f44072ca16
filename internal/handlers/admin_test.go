package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quicklinks/quicklinks-backend/internal/database"
	"github.com/quicklinks/quicklinks-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func createTestAdmin(t *testing.T) models.User {
	admin := models.User{
		Email:     "admin@quicklinks.com",
		Password:  "unused",
		Name:      "Admin",
		Role:      models.RoleAdmin,
		Plan:      models.PlanUnlimited,
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}
	return admin
}

func TestAdminGetStats(t *testing.T) {
	SetupTestDB(t)
	admin := createTestAdmin(t)

	free := createTestUser(t, "free@x.com", "p", models.PlanFree, nil)
	createTestUser(t, "pro@x.com", "p", models.PlanPro, nil)
	createTestUser(t, "biz@x.com", "p", models.PlanBusiness, nil)
	createTestUser(t, "unl@x.com", "p", models.PlanUnlimited, nil)

	link := createTestLink(t, free.ID, "http://example.com", "abc123")
	recordClick(t, link.ID, "10.0.0.1")
	recordClick(t, link.ID, "10.0.0.2")

	c, w := jsonContext(t, "GET", "/api/admin/stats", nil, admin.ID)
	AdminGetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})

	// Admin is excluded from totalUsers
	assert.Equal(t, float64(4), data["totalUsers"])
	// Paid means pro or business; free and unlimited do not count
	assert.Equal(t, float64(2), data["paidUsers"])
	assert.Equal(t, float64(1), data["totalUrls"])
	assert.Equal(t, float64(2), data["totalClicks"])
	assert.Equal(t, float64(2*models.MonthlyPricePerPaidUser), data["mrr"])
	// Everyone was created just now
	assert.Equal(t, float64(5), data["newUsersToday"])
}

func TestAdminListUsers(t *testing.T) {
	SetupTestDB(t)
	admin := createTestAdmin(t)
	user := createTestUser(t, "u@x.com", "p", models.PlanFree, nil)

	link := createTestLink(t, user.ID, "http://example.com", "abc123")
	other := createTestLink(t, user.ID, "http://example.org", "def456")
	recordClick(t, link.ID, "10.0.0.1")
	recordClick(t, other.ID, "10.0.0.2")
	recordClick(t, other.ID, "10.0.0.2")

	c, w := jsonContext(t, "GET", "/api/admin/users", nil, admin.ID)
	AdminListUsers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	// Admin itself is not listed
	assert.Len(t, data, 1)

	row := data[0].(map[string]interface{})
	assert.Equal(t, "u@x.com", row["email"])
	assert.Equal(t, float64(2), row["total_urls"])
	// Clicks joined transitively through the user's links
	assert.Equal(t, float64(3), row["total_clicks"])
}

func TestAdminListURLs(t *testing.T) {
	SetupTestDB(t)
	admin := createTestAdmin(t)
	user := createTestUser(t, "u@x.com", "p", models.PlanFree, nil)

	mine := createTestLink(t, user.ID, "http://example.com", "abc123")
	orphan := createTestLink(t, user.ID+99, "http://example.org", "def456")
	recordClick(t, mine.ID, "10.0.0.1")

	c, w := jsonContext(t, "GET", "/api/admin/urls", nil, admin.ID)
	AdminListURLs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "u@x.com", first["user_email"])
	assert.Equal(t, "abc123", first["short_code"])
	assert.Equal(t, float64(1), first["clicks"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, "Unknown", second["user_email"])
	assert.Equal(t, float64(orphan.ID), second["id"])
	assert.Equal(t, float64(0), second["clicks"])
}

func TestAdminSetUserPlan(t *testing.T) {
	SetupTestDB(t)
	admin := createTestAdmin(t)
	user := createTestUser(t, "u@x.com", "p", models.PlanFree, nil)

	c, w := jsonContext(t, "PUT", "/api/admin/users/1/plan", map[string]string{"plan": "business"}, admin.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(user.ID)}}
	AdminSetUserPlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.User
	database.DB.First(&updated, "id = ?", user.ID)
	assert.Equal(t, models.PlanBusiness, updated.Plan)

	// Unrecognized plan values are stored verbatim
	c, w = jsonContext(t, "PUT", "/api/admin/users/1/plan", map[string]string{"plan": "mystery"}, admin.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(user.ID)}}
	AdminSetUserPlan(c)
	assert.Equal(t, http.StatusOK, w.Code)
	database.DB.First(&updated, "id = ?", user.ID)
	assert.Equal(t, models.Plan("mystery"), updated.Plan)

	// Unknown user
	w = serveHandler(t, "PUT", "/api/admin/users/:id/plan", "/api/admin/users/999/plan",
		map[string]string{"plan": "pro"}, admin.ID, AdminSetUserPlan)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestHealthCheckCounts(t *testing.T) {
	SetupTestDB(t)
	user := createTestUser(t, "u@x.com", "p", models.PlanFree, nil)
	link := createTestLink(t, user.ID, "http://example.com", "abc123")
	recordClick(t, link.ID, "10.0.0.1")

	c, w := jsonContext(t, "GET", "/api/health", nil, 0)
	HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Equal(t, float64(1), body["users"])
	assert.Equal(t, float64(1), body["urls"])
	assert.Equal(t, float64(1), body["clicks"])
}
