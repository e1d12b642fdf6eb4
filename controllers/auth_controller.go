// controllers/auth_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/middleware"
	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
	"github.com/KaryampudiMadhav/yugantha-backend/utils"
)

// AuthController handles registration and login.
type AuthController struct {
	Accounts repositories.AccountRepository
}

// NewAuthController creates a new auth controller.
func NewAuthController(accounts repositories.AccountRepository) *AuthController {
	return &AuthController{Accounts: accounts}
}

// Register creates an instructor or mentor account pending admin approval. No
// password is taken here; the account proves mailbox ownership through the
// OTP setup flow before it can log in.
func (ac *AuthController) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
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

	role := req.Role
	if role == "" {
		role = models.RoleInstructor
	}

	account := &models.Account{
		Role:      role,
		Name:      req.Name,
		Email:     req.Email,
		Expertise: req.Expertise,
		Approved:  false,
		Active:    true,
	}

	if err := ac.Accounts.Insert(ctx, account); err != nil {
		if err == repositories.ErrDuplicateEmail {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "An account with this email already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create account",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Registration received. Your account is pending approval",
		Data: map[string]interface{}{
			"id":    account.ID.Hex(),
			"email": account.Email,
		},
	})
}

// Login authenticates an account and returns a JWT. Accounts without a
// password must first complete the OTP setup flow; unapproved or deactivated
// accounts are rejected even with valid credentials.
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	account, err := ac.Accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve account",
		})
	}

	if !account.HasPassword() {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Password not set. Please complete email verification first",
		})
	}

	if !utils.CheckPassword(account.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	if !account.Active {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Account has been deactivated",
		})
	}

	if !account.Approved {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Account is pending approval",
		})
	}

	token, err := middleware.GenerateJWT(account.ID.Hex(), account.Email, account.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token":   token,
			"account": account,
		},
	})
}
