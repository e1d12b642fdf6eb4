// models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. Instructors and mentors share one credential record shape,
// distinguished only by the role tag.
const (
	RoleInstructor = "instructor"
	RoleMentor     = "mentor"
	RoleAdmin      = "admin"
)

// Account is a credential record for an instructor or mentor.
type Account struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Role         string             `json:"role" bson:"role"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Expertise    string             `json:"expertise,omitempty" bson:"expertise,omitempty"`
	PasswordHash string             `json:"-" bson:"passwordHash,omitempty"`
	Approved     bool               `json:"approved" bson:"approved"`
	Active       bool               `json:"active" bson:"active"`
	OTP          *OTPInfo           `json:"-" bson:"otpInfo,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OTPInfo holds the in-flight one-time code for an account. The pointer on
// Account is nil whenever no reset/setup cycle is in flight, so code and
// expiry are always set together or not at all.
type OTPInfo struct {
	Code      string    `json:"code" bson:"code"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
}

// HasPassword reports whether the account has completed password setup.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// Response is the standard JSON envelope for all handlers.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterRequest is the payload for instructor/mentor registration.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Expertise string `json:"expertise"`
	Role      string `json:"role" validate:"omitempty,oneof=instructor mentor"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest triggers OTP issuance for an account.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the combined verify-and-set payload. The same
// shape serves both forgot-password recovery and post-registration setup.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required"`
}
