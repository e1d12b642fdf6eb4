// repositories/account_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// Sentinel errors shared by all AccountRepository implementations. Controllers
// map these onto HTTP statuses; messages sent to clients stay generic.
var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrOTPInvalid     = errors.New("otp invalid or already consumed")
)

// AccountRepository is the persistence handle for credential records. It is
// constructed explicitly and passed into controllers rather than reached
// through a package-level connection.
type AccountRepository interface {
	// FindByEmail returns the account for the given email or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// Insert stores a new account. Returns ErrDuplicateEmail when the email
	// is already taken.
	Insert(ctx context.Context, account *models.Account) error

	// SetOTP attaches a one-time code to the account, overwriting any code
	// already in flight. Last writer wins.
	SetOTP(ctx context.Context, email string, otp models.OTPInfo) error

	// ConsumeOTPAndSetPassword sets the password hash and clears the OTP in a
	// single conditional write. The stored code and its expiry are re-checked
	// as part of the write, so a code consumed by a concurrent call cannot be
	// replayed. Returns ErrOTPInvalid when the condition no longer holds.
	ConsumeOTPAndSetPassword(ctx context.Context, email, code, passwordHash string) error

	// SetApproved flips the admin approval flag. ErrNotFound for unknown ids.
	SetApproved(ctx context.Context, id string, approved bool) error

	// SetActive flips the soft-disable flag. ErrNotFound for unknown ids.
	SetActive(ctx context.Context, id string, active bool) error

	// ListPending returns accounts awaiting admin approval.
	ListPending(ctx context.Context) ([]models.Account, error)
}
