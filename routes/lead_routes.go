package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/controllers"
)

// RegisterLeadRoutes sets up the public lead capture route.
func RegisterLeadRoutes(e *echo.Echo, leadController *controllers.LeadController) {
	e.POST("/api/leads", leadController.CreateLead)
}
