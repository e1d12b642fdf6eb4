// repositories/memory_account_repository.go
package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KaryampudiMadhav/yugantha-backend/models"
)

// MemoryAccountRepository is an in-process AccountRepository used by tests and
// local development without a Mongo instance. Semantics mirror the Mongo
// implementation, including the conditional consume-and-set write.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account // keyed by email
}

// NewMemoryAccountRepository creates an empty in-memory repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]*models.Account),
	}
}

func (r *MemoryAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *account
	if account.OTP != nil {
		otp := *account.OTP
		copied.OTP = &otp
	}
	return &copied, nil
}

func (r *MemoryAccountRepository) Insert(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now()
	account.ID = primitive.NewObjectID()
	account.CreatedAt = now
	account.UpdatedAt = now

	copied := *account
	r.accounts[account.Email] = &copied
	return nil
}

func (r *MemoryAccountRepository) SetOTP(ctx context.Context, email string, otp models.OTPInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return ErrNotFound
	}
	account.OTP = &otp
	account.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryAccountRepository) ConsumeOTPAndSetPassword(ctx context.Context, email, code, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return ErrOTPInvalid
	}
	if account.OTP == nil || account.OTP.Code != code || !account.OTP.ExpiresAt.After(time.Now()) {
		return ErrOTPInvalid
	}

	account.PasswordHash = passwordHash
	account.OTP = nil
	account.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryAccountRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setFlag(id, func(a *models.Account) { a.Approved = approved })
}

func (r *MemoryAccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.setFlag(id, func(a *models.Account) { a.Active = active })
}

func (r *MemoryAccountRepository) setFlag(id string, apply func(*models.Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.ID.Hex() == id {
			apply(account)
			account.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryAccountRepository) ListPending(ctx context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pending []models.Account
	for _, account := range r.accounts {
		if !account.Approved && account.Active {
			pending = append(pending, *account)
		}
	}
	return pending, nil
}
