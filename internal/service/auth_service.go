package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelai/internal/auth"
	apierrors "travelai/internal/errors"
	"travelai/internal/model"
	"travelai/internal/repository"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 10

// ErrInvalidCredentials is returned when email or password is incorrect.
// Intentionally generic: an unknown email and a wrong password are
// indistinguishable to the caller so accounts cannot be enumerated.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users      repository.UserRepository
	sessions   auth.SessionStoreInterface
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions auth.SessionStoreInterface, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &authService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password. The role is
// always forced to RoleUser regardless of what the client sent.
func (s *authService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.ToLower(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apierrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past the existence check; the
		// unique index on email decides who wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and issues an opaque session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	return token, user, nil
}

// Logout invalidates the session behind token. Legacy-format tokens
// have no server-side session to invalidate, so they are a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" || auth.IsLegacyToken(token) {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
