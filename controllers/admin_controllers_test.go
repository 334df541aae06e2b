package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/auth"
	"github.com/dapoer-roso/reservation-app/controllers"
	"github.com/dapoer-roso/reservation-app/middlewares"
	"github.com/dapoer-roso/reservation-app/models"
	"github.com/dapoer-roso/reservation-app/utils"
)

func setupAdminControllerTest(t *testing.T) (*gin.Engine, *gorm.DB, *auth.Service) {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Reservation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := auth.NewService(db, "test-secret", time.Hour)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	adminCtrl := controllers.NewAdminController(db)
	admin := r.Group("/api/admin", middlewares.AuthMiddleware(svc))
	admin.GET("/reservations", adminCtrl.GetAllReservations)
	admin.GET("/dashboard", middlewares.RequireRole("super-admin"), adminCtrl.Dashboard)

	return r, db, svc
}

// superAdminToken menerbitkan token untuk admin dengan role super-admin.
// Tidak ada flow registrasi yang menghasilkan role ini; akun dibuat
// langsung di storage.
func superAdminToken(t *testing.T, db *gorm.DB, svc *auth.Service) string {
	superAdmin := models.Admin{
		Name:     "Super",
		Email:    "super@example.com",
		Password: "tidak-dipakai",
		Role:     models.RoleSuperAdmin,
	}
	assert.NoError(t, db.Create(&superAdmin).Error)

	token, err := svc.Token(&superAdmin)
	assert.NoError(t, err)
	return token
}

func TestAdminReservationsList(t *testing.T) {
	r, db, svc := setupAdminControllerTest(t)
	token := adminToken(t, svc)

	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	db.Create(&models.Reservation{
		Name: "Citra", Email: "c@example.com", Phone: "0813",
		Time: base.Add(time.Hour), Guests: 2,
		Status: models.ReservationConfirmed, CreatedAt: time.Now(),
	})
	db.Create(&models.Reservation{
		Name: "Agus", Email: "a@example.com", Phone: "0811",
		Time: base, Guests: 4,
		Status: models.ReservationPending, CreatedAt: time.Now(),
	})

	w := doJSON(r, "GET", "/api/admin/reservations", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseEnvelope(t, w)
	assert.Equal(t, float64(2), response["count"])

	list := response["data"].([]interface{})
	first := list[0].(map[string]interface{})
	assert.Equal(t, "Agus", first["name"])

	// Tanpa token -> 401
	w = doJSON(r, "GET", "/api/admin/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardRoleGate(t *testing.T) {
	r, db, svc := setupAdminControllerTest(t)

	// Admin biasa: token valid tapi role kurang -> 403
	token := adminToken(t, svc)
	w := doJSON(r, "GET", "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Tanpa token -> 401, bukan 403
	w = doJSON(r, "GET", "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Super-admin -> 200 + ack
	superToken := superAdminToken(t, db, svc)
	w = doJSON(r, "GET", "/api/admin/dashboard", superToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseEnvelope(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Admin dashboard access granted", response["message"])
}

func TestDashboardStats(t *testing.T) {
	r, db, svc := setupAdminControllerTest(t)
	superToken := superAdminToken(t, db, svc)

	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	db.Create(&models.Reservation{
		Name: "Agus", Email: "a@example.com", Phone: "0811",
		Time: base, Guests: 2,
		Status: models.ReservationPending, CreatedAt: time.Now(),
	})
	db.Create(&models.Reservation{
		Name: "Citra", Email: "c@example.com", Phone: "0813",
		Time: base.Add(time.Hour), Guests: 2,
		Status: models.ReservationConfirmed, CreatedAt: time.Now(),
	})
	db.Create(&models.Reservation{
		Name: "Dewi", Email: "d@example.com", Phone: "0814",
		Time: base.Add(2 * time.Hour), Guests: 3,
		Status: models.ReservationCancelled, CreatedAt: time.Now(),
	})

	w := doJSON(r, "GET", "/api/admin/dashboard", superToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_reservations"])

	statusStats := stats["status_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), statusStats["pending"])
	assert.Equal(t, float64(1), statusStats["confirmed"])
	assert.Equal(t, float64(1), statusStats["cancelled"])
}
