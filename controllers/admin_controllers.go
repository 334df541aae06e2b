package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/models"
	"github.com/dapoer-roso/reservation-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetAllReservations -> tampilan admin, urut ascending berdasarkan waktu.
func (ac *AdminController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := ac.DB.Order("time asc").Find(&reservations).Error; err != nil {
		utils.ErrorLogger.Printf("failed to list reservations: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondList(c, http.StatusOK, "List of reservations", len(reservations), reservations)
}

// Dashboard hanya untuk super-admin (RequireRole di router).
// Mengembalikan ack akses plus ringkasan jumlah reservasi per status.
func (ac *AdminController) Dashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalReservations int64 `json:"total_reservations"`
		TodayReservations int64 `json:"today_reservations"`
		StatusStats       struct {
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
			Cancelled int64 `json:"cancelled"`
		} `json:"status_stats"`
	}

	ac.DB.Model(&models.Reservation{}).Count(&stats.TotalReservations)
	ac.DB.Model(&models.Reservation{}).Where("DATE(created_at) = ?", today).Count(&stats.TodayReservations)

	ac.DB.Model(&models.Reservation{}).
		Where("status = ? OR status = '' OR status IS NULL", models.ReservationPending).
		Count(&stats.StatusStats.Pending)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationConfirmed).Count(&stats.StatusStats.Confirmed)
	ac.DB.Model(&models.Reservation{}).Where("status = ?", models.ReservationCancelled).Count(&stats.StatusStats.Cancelled)

	utils.RespondJSON(c, http.StatusOK, "Admin dashboard access granted", gin.H{
		"stats": stats,
	})
}
