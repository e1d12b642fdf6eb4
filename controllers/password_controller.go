// controllers/password_controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
	"github.com/KaryampudiMadhav/yugantha-backend/utils"
)

// PasswordController handles OTP issuance and the combined verify-and-set
// password flow. The same handlers serve post-registration password setup and
// forgot-password recovery; both converge on "prove mailbox ownership, then
// set a password".
type PasswordController struct {
	Accounts repositories.AccountRepository
	Mailer   utils.Mailer
	Redis    *redis.Client
}

// NewPasswordController creates a new password controller.
func NewPasswordController(accounts repositories.AccountRepository, mailer utils.Mailer, rdb *redis.Client) *PasswordController {
	return &PasswordController{Accounts: accounts, Mailer: mailer, Redis: rdb}
}

// ForgotPassword issues a fresh OTP for the account and emails it. Any code
// already in flight is overwritten. The code is persisted before the email is
// attempted, so a failed delivery leaves a retriable, valid code behind and is
// reported as a warning rather than an error.
func (pc *PasswordController) ForgotPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email is required",
		})
	}

	account, err := pc.Accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "No account associated with this email",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check account",
		})
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate OTP",
		})
	}

	otp := models.OTPInfo{
		Code:      code,
		ExpiresAt: time.Now().Add(utils.OTPTTL),
	}

	// Persist before notifying so a slow or failed send never leaves the
	// stored code out of step with what was attempted.
	if err := pc.Accounts.SetOTP(ctx, account.Email, otp); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save OTP information",
		})
	}

	data := map[string]interface{}{
		"email": utils.MaskEmail(account.Email),
	}

	deliveryID, err := pc.sendOTP(account, code)
	if err != nil {
		log.Printf("OTP email delivery failed for %s: %v", utils.MaskEmail(account.Email), err)
		data["warning"] = "Verification code saved but the email could not be sent. Please retry."
	} else {
		data["deliveryId"] = deliveryID
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Verification code sent successfully",
		Data:    data,
	})
}

func (pc *PasswordController) sendOTP(account *models.Account, code string) (string, error) {
	if pc.Mailer == nil {
		return "", errors.New("mail transport not configured")
	}
	return pc.Mailer.SendOTP(account.Email, account.Name, code)
}

// ResetPassword verifies the submitted OTP and sets the new password in one
// step. Verification is re-run as part of the conditional store write, so no
// verified-but-not-yet-set window exists and a consumed code cannot be
// replayed. Also mounted as the post-registration setup-password endpoint.
func (pc *PasswordController) ResetPassword(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	req.OTP = strings.TrimSpace(req.OTP)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email, a 6-digit OTP, and a new password are required",
		})
	}

	if len(req.Password) < utils.MinPasswordLength {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Password must be at least 6 characters long",
		})
	}

	if err := utils.ValidateOTPAttempts(ctx, req.Email, pc.Redis); err != nil {
		if err == utils.ErrTooManyAttempts {
			return c.JSON(http.StatusTooManyRequests, models.Response{
				Status:  http.StatusTooManyRequests,
				Message: "Too many attempts. Please try again later",
			})
		}
		log.Printf("OTP attempt check failed: %v", err)
	}

	account, err := pc.Accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid OTP",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve account",
		})
	}

	switch utils.ValidateOTP(account.OTP, req.OTP, time.Now()) {
	case nil:
	case utils.ErrNoOTP:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No OTP request found. Please request a new OTP",
		})
	case utils.ErrOTPExpired:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "OTP has expired. Please request a new OTP",
		})
	default:
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid OTP",
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to hash password",
		})
	}

	// The store re-checks code and expiry inside this write.
	if err := pc.Accounts.ConsumeOTPAndSetPassword(ctx, req.Email, req.OTP, hash); err != nil {
		if err == repositories.ErrOTPInvalid {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid OTP",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update password",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Password set successfully",
	})
}
