package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/models"
	"github.com/dapoer-roso/reservation-app/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

var errReservationNotFound = errors.New("reservation not found")

// Form booking mengirim waktu dari input datetime-local tanpa zona,
// API client memakai RFC3339. Keduanya diterima.
var reservationTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseReservationTime(raw string) (time.Time, error) {
	for _, layout := range reservationTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid reservation time format")
}

// Create -> reservasi baru dari form publik, tanpa auth.
// Record selalu mulai dengan status pending.
func (rc *ReservationController) Create(c *gin.Context) {
	type request struct {
		Name    string `json:"name" binding:"required,max=50"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone" binding:"required,max=20"`
		Message string `json:"message" binding:"omitempty,max=500"`
		Time    string `json:"time" binding:"required"`
		Guests  *int   `json:"guests" binding:"omitnil,min=1,max=20"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservedAt, err := parseReservationTime(req.Time)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	guests := 1
	if req.Guests != nil {
		guests = *req.Guests
	}

	reservation := models.Reservation{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Time:      reservedAt,
		Guests:    guests,
		Status:    models.ReservationPending,
		CreatedAt: time.Now(),
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("failed to create reservation: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.InfoLogger.Printf("New reservation (ID=%d) for %s, %d guest(s) at %s",
		reservation.ID, reservation.Name, reservation.Guests, reservation.Time.Format(time.RFC3339))

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAll -> daftar reservasi, ascending berdasarkan waktu reservasi.
// Filter ?status= opsional; filter pending juga mengikutkan record
// lama yang status-nya masih kosong.
func (rc *ReservationController) GetAll(c *gin.Context) {
	query := rc.DB.Model(&models.Reservation{}).Order("time asc")

	if status := c.Query("status"); status != "" {
		if status == models.ReservationPending {
			query = query.Where("status = ? OR status = '' OR status IS NULL", models.ReservationPending)
		} else {
			query = query.Where("status = ?", status)
		}
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.ErrorLogger.Printf("failed to list reservations: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondList(c, http.StatusOK, "List of reservations", len(reservations), reservations)
}

// GetByID -> detail satu reservasi. Id yang bukan angka diperlakukan
// sama dengan id yang tidak ada: 404.
func (rc *ReservationController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
			return
		}
		utils.ErrorLogger.Printf("failed to get reservation %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// Update -> partial update field apapun termasuk status.
// Tidak ada penjagaan transisi status: admin boleh mengubah dari dan
// ke status manapun dalam enum.
func (rc *ReservationController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
			return
		}
		utils.ErrorLogger.Printf("failed to get reservation %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	type request struct {
		// omitnil: field yang tidak dikirim dilewati, tetapi nilai
		// kosong yang dikirim eksplisit tetap divalidasi.
		Name    *string `json:"name" binding:"omitnil,min=1,max=50"`
		Email   *string `json:"email" binding:"omitnil,email"`
		Phone   *string `json:"phone" binding:"omitnil,min=1,max=20"`
		Message *string `json:"message" binding:"omitnil,max=500"`
		Time    *string `json:"time"`
		Guests  *int    `json:"guests" binding:"omitnil,min=1,max=20"`
		Status  *string `json:"status" binding:"omitnil,oneof=pending confirmed cancelled"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		reservation.Name = *req.Name
	}
	if req.Email != nil {
		reservation.Email = *req.Email
	}
	if req.Phone != nil {
		reservation.Phone = *req.Phone
	}
	if req.Message != nil {
		reservation.Message = *req.Message
	}
	if req.Time != nil {
		reservedAt, err := parseReservationTime(*req.Time)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		reservation.Time = reservedAt
	}
	if req.Guests != nil {
		reservation.Guests = *req.Guests
	}
	if req.Status != nil {
		reservation.Status = *req.Status
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("failed to update reservation %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.InfoLogger.Printf("Reservation %d updated (status=%s)", reservation.ID, reservation.Status)

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// Delete -> hapus reservasi (hanya lewat API admin).
func (rc *ReservationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errReservationNotFound)
			return
		}
		utils.ErrorLogger.Printf("failed to get reservation %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.ErrorLogger.Printf("failed to delete reservation %d: %v", id, err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{})
}
