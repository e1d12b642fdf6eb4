package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

func TestInsertRejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryAccountRepository()
	ctx := context.Background()

	first := &models.Account{Role: models.RoleMentor, Name: "A", Email: "mentor@example.com", Active: true}
	require.NoError(t, repo.Insert(ctx, first))
	assert.False(t, first.ID.IsZero())

	second := &models.Account{Role: models.RoleMentor, Name: "B", Email: "mentor@example.com", Active: true}
	assert.Equal(t, ErrDuplicateEmail, repo.Insert(ctx, second))
}

func TestSetOTPUnknownEmail(t *testing.T) {
	repo := NewMemoryAccountRepository()
	otp := models.OTPInfo{Code: "123456", ExpiresAt: time.Now().Add(time.Minute)}
	assert.Equal(t, ErrNotFound, repo.SetOTP(context.Background(), "nobody@example.com", otp))
}

func TestConsumeOTPAndSetPassword(t *testing.T) {
	repo := NewMemoryAccountRepository()
	ctx := context.Background()

	account := &models.Account{Role: models.RoleMentor, Name: "A", Email: "mentor@example.com", Active: true}
	require.NoError(t, repo.Insert(ctx, account))
	require.NoError(t, repo.SetOTP(ctx, "mentor@example.com", models.OTPInfo{
		Code:      "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	// The conditional write re-checks code and expiry.
	assert.Equal(t, ErrOTPInvalid, repo.ConsumeOTPAndSetPassword(ctx, "mentor@example.com", "654321", "hash"))

	require.NoError(t, repo.ConsumeOTPAndSetPassword(ctx, "mentor@example.com", "123456", "hash"))

	got, err := repo.FindByEmail(ctx, "mentor@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Nil(t, got.OTP)

	// Consumed codes cannot match again.
	assert.Equal(t, ErrOTPInvalid, repo.ConsumeOTPAndSetPassword(ctx, "mentor@example.com", "123456", "hash2"))
}

func TestConsumeOTPExpired(t *testing.T) {
	repo := NewMemoryAccountRepository()
	ctx := context.Background()

	account := &models.Account{Role: models.RoleMentor, Name: "A", Email: "mentor@example.com", Active: true}
	require.NoError(t, repo.Insert(ctx, account))
	require.NoError(t, repo.SetOTP(ctx, "mentor@example.com", models.OTPInfo{
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	assert.Equal(t, ErrOTPInvalid, repo.ConsumeOTPAndSetPassword(ctx, "mentor@example.com", "123456", "hash"))
}

func TestFindByEmailReturnsCopy(t *testing.T) {
	repo := NewMemoryAccountRepository()
	ctx := context.Background()

	account := &models.Account{Role: models.RoleMentor, Name: "A", Email: "mentor@example.com", Active: true}
	require.NoError(t, repo.Insert(ctx, account))
	require.NoError(t, repo.SetOTP(ctx, "mentor@example.com", models.OTPInfo{
		Code:      "123456",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	got, err := repo.FindByEmail(ctx, "mentor@example.com")
	require.NoError(t, err)
	got.OTP.Code = "mutated"
	got.Name = "mutated"

	fresh, err := repo.FindByEmail(ctx, "mentor@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", fresh.OTP.Code)
	assert.Equal(t, "A", fresh.Name)
}
