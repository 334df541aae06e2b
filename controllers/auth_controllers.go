package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapoer-roso/reservation-app/auth"
	"github.com/dapoer-roso/reservation-app/utils"
)

type AuthController struct {
	Auth *auth.Service
}

func NewAuthController(authService *auth.Service) *AuthController {
	return &AuthController{Auth: authService}
}

// Register admin baru -> 201 + token
func (ac *AuthController) Register(c *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	admin, err := ac.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAdminExists) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("register failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	token, err := ac.Auth.Token(admin)
	if err != nil {
		utils.ErrorLogger.Printf("token generation failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.InfoLogger.Printf("New admin registered: %s", admin.Email)

	utils.RespondJSON(c, http.StatusCreated, "Admin registered", gin.H{
		"token": token,
	})
}

// Login admin -> 200 + token
func (ac *AuthController) Login(c *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		utils.ErrorLogger.Printf("login failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

// Me mengembalikan identitas admin dari token yang sudah lolos gate.
func (ac *AuthController) Me(c *gin.Context) {
	adminIDValue, exists := c.Get("admin_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("admin id not found in context"))
		return
	}

	adminID, ok := adminIDValue.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errServer)
		return
	}

	admin, err := ac.Auth.AdminByID(adminID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("admin not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	})
}

// Logout hanya mengirim ack; token dibuang di sisi client dan tetap
// berlaku sampai expiry (tidak ada revocation list).
func (ac *AuthController) Logout(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Successfully logged out", nil)
}

var errServer = errors.New("server error")
