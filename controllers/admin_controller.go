// controllers/admin_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
)

// AdminController handles account review actions. Routes using it are gated
// behind the admin role claim.
type AdminController struct {
	Accounts repositories.AccountRepository
}

// NewAdminController creates a new admin controller.
func NewAdminController(accounts repositories.AccountRepository) *AdminController {
	return &AdminController{Accounts: accounts}
}

// ListPendingAccounts returns accounts awaiting approval.
func (ac *AdminController) ListPendingAccounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accounts, err := ac.Accounts.ListPending(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to list pending accounts",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pending accounts retrieved successfully",
		Data:    accounts,
	})
}

// ApproveAccount marks an account as approved, unlocking login.
func (ac *AdminController) ApproveAccount(c echo.Context) error {
	return ac.setFlag(c, func(ctx context.Context, id string) error {
		return ac.Accounts.SetApproved(ctx, id, true)
	}, "Account approved successfully")
}

// DeactivateAccount soft-disables an account.
func (ac *AdminController) DeactivateAccount(c echo.Context) error {
	return ac.setFlag(c, func(ctx context.Context, id string) error {
		return ac.Accounts.SetActive(ctx, id, false)
	}, "Account deactivated successfully")
}

func (ac *AdminController) setFlag(c echo.Context, apply func(context.Context, string) error, okMessage string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Account ID is required",
		})
	}

	if err := apply(ctx, id); err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Account not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update account",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: okMessage,
	})
}
