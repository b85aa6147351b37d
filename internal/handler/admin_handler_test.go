package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"travelai/internal/auth"
	apierrors "travelai/internal/errors"
	"travelai/internal/model"
	"travelai/internal/service"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, caller *model.User, id uint, update service.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, caller, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, caller *model.User, id uint) (*model.User, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func withPrincipal(c echo.Context, user *model.User) {
	c.Set(auth.PrincipalContextKey, user)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("ListUsers", mock.Anything).Return([]model.User{
		{ID: 1, Email: "admin@test.com", Name: "Admin", PasswordHash: "h1", Role: model.RoleAdmin},
		{ID: 2, Email: "u@test.com", Name: "User", PasswordHash: "h2", Role: model.RoleUser},
	}, nil)

	h := NewAdminHandler(mockSvc)
	c, rec := newTestContext(t, http.MethodGet, "/api/admin/users", "")

	assert.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp UserListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Users, 2)
	assert.NotContains(t, rec.Body.String(), "h1")
}

func TestAdminHandler_GetUser_NotFound(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("GetUser", mock.Anything, uint(42)).Return(nil, apierrors.ErrUserNotFound)

	h := NewAdminHandler(mockSvc)
	c, _ := newTestContext(t, http.MethodGet, "/api/admin/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetUser(c)
	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	caller := &model.User{ID: 1, Email: "admin@test.com", Role: model.RoleAdmin}

	t.Run("partial update", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("UpdateUser", mock.Anything, caller, uint(2),
			mock.MatchedBy(func(u service.UserUpdate) bool {
				return u.Name != nil && *u.Name == "Renamed" && u.Email == nil && u.Role == nil
			})).Return(&model.User{
			ID: 2, Email: "u@test.com", Name: "Renamed", Role: model.RoleUser,
		}, nil)

		h := NewAdminHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodPatch, "/api/admin/users/2", `{"name":"Renamed"}`)
		c.SetParamNames("id")
		c.SetParamValues("2")
		withPrincipal(c, caller)

		assert.NoError(t, h.UpdateUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var view model.UserView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Renamed", view.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("self demotion is rejected", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("UpdateUser", mock.Anything, caller, uint(1), mock.Anything).
			Return(nil, apierrors.ErrSelfDemotion)

		h := NewAdminHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodPatch, "/api/admin/users/1", `{"role":"user"}`)
		c.SetParamNames("id")
		c.SetParamValues("1")
		withPrincipal(c, caller)

		err := h.UpdateUser(c)
		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	caller := &model.User{ID: 1, Email: "admin@test.com", Role: model.RoleAdmin}

	t.Run("confirmation carries the deleted email", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("DeleteUser", mock.Anything, caller, uint(2)).Return(&model.User{
			ID: 2, Email: "gone@test.com", Role: model.RoleUser,
		}, nil)

		h := NewAdminHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodDelete, "/api/admin/users/2", "")
		c.SetParamNames("id")
		c.SetParamValues("2")
		withPrincipal(c, caller)

		assert.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp DeleteUserResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "user gone@test.com deleted", resp.Message)
	})

	t.Run("self deletion is rejected", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("DeleteUser", mock.Anything, caller, uint(1)).
			Return(nil, apierrors.ErrSelfDeletion)

		h := NewAdminHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodDelete, "/api/admin/users/1", "")
		c.SetParamNames("id")
		c.SetParamValues("1")
		withPrincipal(c, caller)

		err := h.DeleteUser(c)
		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h := NewAdminHandler(new(MockUserService))
		c, _ := newTestContext(t, http.MethodDelete, "/api/admin/users/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")
		withPrincipal(c, caller)

		err := h.DeleteUser(c)
		var httpErr *echo.HTTPError
		assert.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
