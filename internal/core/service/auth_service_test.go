package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubLimiter struct {
	failures map[string]int
	locked   bool
}

func (l *stubLimiter) Allow(_ context.Context, email string) error {
	if l.locked {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	if l.failures == nil {
		l.failures = make(map[string]int)
	}
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}

func newAuthService(repo ports.UserRepository, limiter ports.LoginLimiter) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, limiter, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@test.com", Password: "pw123456", Name: "Jane", Role: domain.RoleMentor,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected auto-login token")
	}
	if result.User.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// The token's embedded role equals the submitted role.
	identity, err := NewTokenService("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if identity.Role != domain.RoleMentor || identity.ID != result.User.ID {
		t.Fatalf("unexpected claims: %+v", identity)
	}

	// A subsequent login with the same credentials succeeds.
	if _, err := svc.Login(context.Background(), "jane@test.com", "pw123456"); err != nil {
		t.Fatalf("login after register failed: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@test.com", Password: "pw"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing fields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "a@test.com", Password: "pw", Name: "A", Role: "admin",
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	input := ports.RegisterInput{Email: "bob@test.com", Password: "pw123456", Name: "Bob", Role: domain.RoleLearner}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	first := cloneUser(repo.users["bob@test.com"])

	input.Name = "Robert"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// First user's record is unchanged.
	if repo.users["bob@test.com"].Name != first.Name {
		t.Fatalf("existing record was modified by failed registration")
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "x@test.com", Password: "rightpass", Name: "X", Role: domain.RoleLearner,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errWrong := svc.Login(context.Background(), "x@test.com", "wrong")
	_, errGhost := svc.Login(context.Background(), "noone@test.com", "anything")

	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
	if !errors.Is(errGhost, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errGhost)
	}
	if errWrong.Error() != errGhost.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrong, errGhost)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "y@test.com", Password: "rightpass", Name: "Y", Role: domain.RoleLearner,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "y@test.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures["y@test.com"] != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures["y@test.com"])
	}

	// Successful login clears the counter.
	if _, err := svc.Login(context.Background(), "y@test.com", "rightpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, ok := limiter.failures["y@test.com"]; ok {
		t.Fatalf("expected failure counter to be reset")
	}

	limiter.locked = true
	if _, err := svc.Login(context.Background(), "y@test.com", "rightpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "z@test.com", Password: "pw123456", Name: "Z", Role: domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Me(context.Background(), result.User.ID)
	if err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if user.Email != "z@test.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// A valid token whose subject no longer exists.
	if _, err := svc.Me(context.Background(), 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
