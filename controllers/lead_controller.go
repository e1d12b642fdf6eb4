// controllers/lead_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
)

// LeadController handles the public lead capture form and the admin listing.
type LeadController struct {
	Leads *repositories.LeadRepository
}

// NewLeadController creates a new lead controller.
func NewLeadController(leads *repositories.LeadRepository) *LeadController {
	return &LeadController{Leads: leads}
}

// CreateLead stores a course-interest submission.
func (lc *LeadController) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name and a valid email are required",
		})
	}

	lead := &models.Lead{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Message:        req.Message,
		CourseInterest: req.CourseInterest,
	}

	if err := lc.Leads.Insert(ctx, lead); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save your details",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Thank you for your interest. We will get back to you soon",
		Data: map[string]interface{}{
			"id": lead.ID.Hex(),
		},
	})
}

// ListLeads returns all captured leads, newest first.
func (lc *LeadController) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	leads, err := lc.Leads.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to list leads",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Leads retrieved successfully",
		Data:    leads,
	})
}
