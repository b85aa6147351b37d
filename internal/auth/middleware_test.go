package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"travelai/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestGuardRequire(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockUserRepository, *MockSessionStore)
		expectedStatus int
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			setupMock:      func(*MockUserRepository, *MockSessionStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed legacy token",
			authHeader:     "Bearer token_abc_admin",
			setupMock:      func(*MockUserRepository, *MockSessionStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "legacy token for deleted user",
			authHeader: "Bearer token_99_admin",
			setupMock: func(users *MockUserRepository, _ *MockSessionStore) {
				users.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "forged admin claim does not grant privilege",
			authHeader: "Bearer token_5_admin",
			setupMock: func(users *MockUserRepository, _ *MockSessionStore) {
				users.On("FindByID", mock.Anything, uint(5)).Return(&model.User{
					ID: 5, Email: "u@test.com", Role: model.RoleUser,
				}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "legacy token for admin",
			authHeader: "Bearer token_1_admin",
			setupMock: func(users *MockUserRepository, _ *MockSessionStore) {
				users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID: 1, Email: "admin@test.com", Role: model.RoleAdmin,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "unknown session token",
			authHeader: "Bearer 9f4cdd1c-8f1e-4a0b-a6b7-2f95a1a1a1a1",
			setupMock: func(_ *MockUserRepository, sessions *MockSessionStore) {
				sessions.On("Resolve", mock.Anything, "9f4cdd1c-8f1e-4a0b-a6b7-2f95a1a1a1a1").
					Return(uint(0), ErrSessionNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "session token for admin",
			authHeader: "Bearer 9f4cdd1c-8f1e-4a0b-a6b7-2f95a1a1a1a1",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				sessions.On("Resolve", mock.Anything, "9f4cdd1c-8f1e-4a0b-a6b7-2f95a1a1a1a1").
					Return(uint(3), nil)
				users.On("FindByID", mock.Anything, uint(3)).Return(&model.User{
					ID: 3, Email: "admin@test.com", Role: model.RoleAdmin,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "moderator hitting admin endpoint",
			authHeader: "Bearer token_2_moderator",
			setupMock: func(users *MockUserRepository, _ *MockSessionStore) {
				users.On("FindByID", mock.Anything, uint(2)).Return(&model.User{
					ID: 2, Email: "mod@test.com", Role: model.RoleModerator,
				}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockRepo, mockSessions)

			guard := NewGuard(mockRepo, mockSessions)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}
			err := guard.Require(model.RoleAdmin)(next)(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				principal := Principal(c)
				assert.NotNil(t, principal)
				assert.Equal(t, model.RoleAdmin, principal.Role)
			} else {
				var httpErr *echo.HTTPError
				assert.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}

			mockRepo.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}
