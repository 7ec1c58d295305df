package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for identity records.
type UserRepository interface {
	// Create inserts a new user and returns it with the assigned id.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
