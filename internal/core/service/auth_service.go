package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login and current-user lookup.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter // nil disables throttling
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates an account and returns it with a fresh token (auto-login).
// The plaintext password is hashed before persistence and never returned.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Role == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: invalid role", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(domain.Identity{ID: created.ID, Email: created.Email, Role: created.Role})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	if s.limiter != nil {
		if err := s.limiter.Allow(ctx, email); err != nil {
			return nil, err
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	token, err := s.tokens.Issue(domain.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: user}, nil
}

// Me returns the user record behind a verified token subject. The record can
// be gone even though the token is still valid.
func (s *AuthService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
