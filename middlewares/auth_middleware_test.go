package middlewares_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/auth"
	"github.com/dapoer-roso/reservation-app/middlewares"
	"github.com/dapoer-roso/reservation-app/models"
	"github.com/dapoer-roso/reservation-app/utils"
)

func setupGateTest(t *testing.T) (*gin.Engine, *auth.Service) {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := auth.NewService(db, "test-secret", time.Hour)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middlewares.AuthMiddleware(svc), func(c *gin.Context) {
		adminID, _ := c.Get("admin_id")
		role, _ := c.Get("role")
		c.JSON(200, gin.H{"admin_id": adminID, "role": role})
	})

	return r, svc
}

func get(r *gin.Engine, url, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", url, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAdmitsValidToken(t *testing.T) {
	r, svc := setupGateTest(t)

	admin, err := svc.Register("Budi", "budi@example.com", "rahasia123")
	assert.NoError(t, err)
	token, err := svc.Token(admin)
	assert.NoError(t, err)

	w := get(r, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	r, _ := setupGateTest(t)

	// Header kosong, format salah, token ngawur: semuanya 401
	w := get(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/protected", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/protected", "Bearer token-ngawur")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/super", func(c *gin.Context) {
		// Role di-set seolah sudah lolos AuthMiddleware
		c.Set("role", c.Query("as"))
	}, middlewares.RequireRole("super-admin"), func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok"})
	})

	w := get(r, "/super?as=admin", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "/super?as=super-admin", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
