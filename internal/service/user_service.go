package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apierrors "travelai/internal/errors"
	"travelai/internal/model"
	"travelai/internal/repository"
)

// UserUpdate carries the fields of a partial user update. Nil pointers
// mean "leave untouched", not "reset".
type UserUpdate struct {
	Email *string
	Name  *string
	Role  *model.Role
}

// UserService exposes the admin-only user management operations.
// Callers are expected to have passed the authorization guard; caller
// identifies the authenticated admin for the self-protection checks.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateUser(ctx context.Context, caller *model.User, id uint, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, caller *model.User, id uint) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial update to a user. A caller can never
// change their own role away from admin.
func (s *userService) UpdateUser(ctx context.Context, caller *model.User, id uint, update UserUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Role != nil {
		if !update.Role.Valid() {
			return nil, apierrors.ErrInvalidRole
		}
		if user.ID == caller.ID && *update.Role != model.RoleAdmin {
			return nil, apierrors.ErrSelfDemotion
		}
	}

	if update.Email != nil {
		email := strings.ToLower(*update.Email)
		if email != user.Email {
			existing, err := s.users.FindByEmail(ctx, email)
			if err == nil && existing != nil && existing.ID != user.ID {
				return nil, apierrors.ErrEmailTaken
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("check email uniqueness: %w", err)
			}
			user.Email = email
		}
	}

	if update.Name != nil {
		user.Name = *update.Name
	}

	if update.Role != nil {
		user.Role = *update.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user permanently. A caller can never delete
// their own account.
func (s *userService) DeleteUser(ctx context.Context, caller *model.User, id uint) (*model.User, error) {
	if id == caller.ID {
		return nil, apierrors.ErrSelfDeletion
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return user, nil
}
