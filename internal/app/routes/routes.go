// Package routes wires controllers onto the Gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/upslabs/reservalab/internal/app/controllers"
	"github.com/upslabs/reservalab/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	reservationController *controllers.ReservationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/register-admin", adminController.Register)
		auth.POST("/login-admin", adminController.Login)
	}

	// Token-protected routes
	authenticated := api.Group("/auth")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/logout", authController.Logout)
		authenticated.POST("/laboratory", reservationController.Create)
		authenticated.GET("/laboratory/reservations", reservationController.ListOwn)
	}

	// Admin-only routes
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/users", adminController.ListUsers)
		admin.PATCH("/users/:id", adminController.UpdateUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)

		admin.GET("/laboratories", adminController.ListReservations)
		admin.PATCH("/laboratories/:id", adminController.UpdateReservation)
		admin.DELETE("/laboratories/:id", adminController.DeleteReservation)
	}
}
