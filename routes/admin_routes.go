package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/controllers"
	"github.com/KaryampudiMadhav/yugantha-backend/middleware"
	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// RegisterAdminRoutes sets up account review and lead management routes,
// gated behind JWT auth with the admin role claim.
func RegisterAdminRoutes(e *echo.Echo, adminController *controllers.AdminController, leadController *controllers.LeadController) {
	admin := e.Group("/api/admin")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.GET("/accounts/pending", adminController.ListPendingAccounts)
	admin.PUT("/accounts/:id/approve", adminController.ApproveAccount)
	admin.PUT("/accounts/:id/deactivate", adminController.DeactivateAccount)
	admin.GET("/leads", leadController.ListLeads)
}
