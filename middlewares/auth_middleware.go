package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dapoer-roso/reservation-app/auth"
	"github.com/dapoer-roso/reservation-app/utils"
)

// AuthMiddleware adalah gate untuk semua route yang diproteksi.
// Token bearer diambil dari header Authorization, diverifikasi lewat
// auth.Service, lalu id dan role admin disimpan di context request.
// Kegagalan apapun berhenti di sini dengan 401.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid authorization header format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.Verify(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, auth.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole membatasi route untuk role tertentu. Dipasang setelah
// AuthMiddleware; token yang valid dengan role berbeda mendapat 403.
// Super-admin lolos semua pemeriksaan role di bawahnya.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found in context"))
			c.Abort()
			return
		}

		role, _ := roleValue.(string)
		switch required {
		case "admin":
			if role != "admin" && role != "super-admin" {
				utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
				c.Abort()
				return
			}
		case "super-admin":
			if role != "super-admin" {
				utils.RespondError(c, http.StatusForbidden, errors.New("super-admin access required"))
				c.Abort()
				return
			}
		default:
			if role != required {
				utils.RespondError(c, http.StatusForbidden, errors.New(required+" access required"))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
