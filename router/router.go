package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dapoer-roso/reservation-app/auth"
	"github.com/dapoer-roso/reservation-app/config"
	"github.com/dapoer-roso/reservation-app/controllers"
	"github.com/dapoer-roso/reservation-app/middlewares"
)

func SetupRouter(cfg *config.Config, db *gorm.DB, authService *auth.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))

	// Rate limiter global per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	// Inisialisasi controller
	authCtrl := controllers.NewAuthController(authService)
	reservationCtrl := controllers.NewReservationController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the Restaurant Booking API"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      AUTH
	// ----------------------------------------------------------------
	authGroup := api.Group("/auth")
	{
		// Rate limiter ketat untuk register/login
		strict := middlewares.NewStrictRateLimiter()
		authGroup.POST("/register", strict, authCtrl.Register)
		authGroup.POST("/login", strict, authCtrl.Login)

		authGroup.GET("/me", middlewares.AuthMiddleware(authService), authCtrl.Me)
		authGroup.GET("/logout", middlewares.AuthMiddleware(authService), authCtrl.Logout)
	}

	// ----------------------------------------------------------------
	//                      RESERVATIONS
	// ----------------------------------------------------------------
	reservations := api.Group("/reservations")
	{
		// Form booking publik, tanpa auth
		reservations.POST("", reservationCtrl.Create)

		protected := reservations.Group("", middlewares.AuthMiddleware(authService))
		{
			protected.GET("", reservationCtrl.GetAll)
			protected.GET("/:id", reservationCtrl.GetByID)
			protected.PUT("/:id", reservationCtrl.Update)
			protected.DELETE("/:id", reservationCtrl.Delete)
		}
	}

	// ----------------------------------------------------------------
	//                      ADMIN
	// ----------------------------------------------------------------
	admin := api.Group("/admin", middlewares.AuthMiddleware(authService))
	{
		admin.GET("/reservations", adminCtrl.GetAllReservations)
		admin.GET("/dashboard", middlewares.RequireRole("super-admin"), adminCtrl.Dashboard)
	}

	return r
}
