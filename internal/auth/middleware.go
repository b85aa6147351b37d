package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apierrors "travelai/internal/errors"
	"travelai/internal/model"
	"travelai/internal/repository"
)

// PrincipalContextKey is the echo context key under which the Guard
// stores the authenticated user.
const PrincipalContextKey = "principal"

// Guard resolves a bearer credential into the authenticated user and
// enforces role-gated access. Both opaque session tokens and legacy
// "token_<id>_<role>" strings are accepted; in either case the role
// used for the decision is the one currently recorded in the store,
// never a claim carried inside the credential.
type Guard struct {
	users    repository.UserRepository
	sessions SessionStoreInterface
}

// NewGuard creates an authorization guard.
func NewGuard(users repository.UserRepository, sessions SessionStoreInterface) *Guard {
	return &Guard{users: users, sessions: sessions}
}

// Require returns middleware that admits only users holding role.
func (g *Guard) Require(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := g.authenticate(c)
			if err != nil {
				return err
			}
			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, apierrors.ErrorResponse{
					Error: "access denied: " + string(role) + " role required",
				})
			}
			c.Set(PrincipalContextKey, user)
			return next(c)
		}
	}
}

// Principal returns the user stored by Require, or nil when the route
// is not guarded.
func Principal(c echo.Context) *model.User {
	user, _ := c.Get(PrincipalContextKey).(*model.User)
	return user
}

func (g *Guard) authenticate(c echo.Context) (*model.User, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
			Error: "authorization required",
		})
	}
	token := strings.TrimPrefix(header, "Bearer ")

	var userID uint
	if IsLegacyToken(token) {
		id, _, err := ParseLegacyToken(token)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
				Error: "invalid token",
			})
		}
		userID = id
	} else {
		id, err := g.sessions.Resolve(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return nil, echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
					Error: "invalid token",
				})
			}
			return nil, echo.NewHTTPError(http.StatusInternalServerError, apierrors.ErrorResponse{
				Error: "internal server error",
			})
		}
		userID = id
	}

	user, err := g.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
				Error: "user not found",
			})
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, apierrors.ErrorResponse{
			Error: "internal server error",
		})
	}
	return user, nil
}
