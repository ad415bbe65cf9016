package middleware

import (
	"net/http"

	"campus-events-api/core/cache"
	"campus-events-api/core/controller"
	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyRole   = "auth_role"
	ContextKeyToken  = "auth_token"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the bearer token (header or cookie), rejects
// blacklisted tokens, and stores the request-scoped identity on the context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromRequest(c)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "missing or malformed authorization token")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted:Error:", err)
				return controller.NewErrorResponse(http.StatusInternalServerError,
					errors.ErrInternalServer, "failed to verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "invalid or expired token")
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of the given roles. Must run after AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return controller.NewErrorResponse(http.StatusForbidden,
				errors.ErrForbidden, "insufficient role for this operation")
		}
	}
}

// UserID returns the authenticated account id set by AuthMiddleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

func Role(c echo.Context) string {
	role, _ := c.Get(ContextKeyRole).(string)
	return role
}

func Token(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)
	return token
}
