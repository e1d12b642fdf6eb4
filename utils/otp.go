// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// OTPTTL is how long an issued code stays valid.
const OTPTTL = 10 * time.Minute

// OTP validation failures. Handlers flatten these into generic messages but
// tests can tell them apart.
var (
	ErrNoOTP       = errors.New("no otp request in flight")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPMismatch = errors.New("otp does not match")
)

// GenerateOTP returns a 6-digit code drawn uniformly from [100000, 999999]
// using a cryptographically secure source, so the code never needs
// zero-padding and is not predictable.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// ValidateOTP checks a submitted code against the stored one. The caller is
// expected to have trimmed the submission already; comparison is exact string
// equality. Validation does not consume the code.
func ValidateOTP(stored *models.OTPInfo, submitted string, now time.Time) error {
	if stored == nil {
		return ErrNoOTP
	}
	if !stored.ExpiresAt.After(now) {
		return ErrOTPExpired
	}
	if stored.Code != submitted {
		return ErrOTPMismatch
	}
	return nil
}

// ErrTooManyAttempts is returned when the per-email attempt budget is spent.
var ErrTooManyAttempts = errors.New("too many OTP attempts")

// ValidateOTPAttempts enforces a 5-attempts-per-hour budget per email via
// Redis. A nil client disables the check so the flow still works when Redis
// is not deployed.
func ValidateOTPAttempts(ctx context.Context, email string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "otp_attempts:" + email
	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}

	if attempts == 1 {
		rdb.Expire(ctx, key, 1*time.Hour)
	}

	if attempts > 5 {
		return ErrTooManyAttempts
	}

	return nil
}
