package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
	"github.com/KaryampudiMadhav/yugantha-backend/repositories"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

// registerAuthHandlers mounts the public auth endpoints on the same paths the
// routes package uses, without importing it (that would cycle back into this
// package in the test build).
func registerAuthHandlers(e *echo.Echo, ac *AuthController, pc *PasswordController) {
	e.POST("/api/auth/register", ac.Register)
	e.POST("/api/auth/login", ac.Login)
	e.POST("/api/auth/forgot-password", pc.ForgotPassword)
	e.POST("/api/auth/reset-password", pc.ResetPassword)
	e.POST("/api/auth/setup-password", pc.ResetPassword)
}

// fakeMailer records the last code handed to the transport and can be told
// to fail, standing in for an unreachable SMTP server.
type fakeMailer struct {
	lastEmail string
	lastCode  string
	sent      int
	fail      bool
}

func (f *fakeMailer) SendOTP(toEmail, toName, code string) (string, error) {
	if f.fail {
		return "", errors.New("smtp unreachable")
	}
	f.lastEmail = toEmail
	f.lastCode = code
	f.sent++
	return "<msg-1@test>", nil
}

func seedAccount(t *testing.T, repo repositories.AccountRepository, email, role string) *models.Account {
	t.Helper()
	account := &models.Account{
		Role:     role,
		Name:     "Test Mentor",
		Email:    email,
		Approved: false,
		Active:   true,
	}
	require.NoError(t, repo.Insert(context.Background(), account))
	return account
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}
