package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/controllers"
)

// RegisterAuthRoutes sets up the public authentication routes.
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController, passwordController *controllers.PasswordController) {
	e.POST("/api/auth/register", authController.Register)
	e.POST("/api/auth/login", authController.Login)
	e.POST("/api/auth/forgot-password", passwordController.ForgotPassword)
	e.POST("/api/auth/reset-password", passwordController.ResetPassword)
	// Post-registration password setup is the same verify-and-set flow
	e.POST("/api/auth/setup-password", passwordController.ResetPassword)
}
