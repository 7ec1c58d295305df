package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthResult is returned by Register and Login: the user plus a fresh token
// (registration auto-logs the new account in).
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, login and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
}

// LoginLimiter throttles repeated failed logins per account. Implementations
// must be safe to skip entirely (a nil limiter disables throttling).
type LoginLimiter interface {
	// Allow returns domain.ErrTooManyAttempts when the account is locked out.
	Allow(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
