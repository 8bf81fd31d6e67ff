package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// Context keys set by RequireAuth for downstream handlers
const (
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
)

// AuthMiddleware provides the token verification gate
type AuthMiddleware struct {
	tokens port.TokenService
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens port.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth verifies the session token before the request proceeds.
// The token is read from the Authorization header; a standard "Bearer "
// prefix is accepted but not required. A request with no token at all is
// distinguished from one with a bad token: the former is 401, the latter
// 403.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := extractToken(c)

			claims, err := m.tokens.Verify(tokenString)
			if err != nil {
				if errors.Is(err, domain.ErrTokenMissing) {
					return c.JSON(http.StatusUnauthorized, map[string]string{
						"message": "Unauthorized access",
					})
				}

				m.logger.Warn("token verification failed",
					"error", err,
					"ip", c.RealIP(),
					"path", c.Request().URL.Path)
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": "Forbidden access",
				})
			}

			c.Set(ContextKeyUserEmail, claims.Subject)
			c.Set(ContextKeyUserRole, string(claims.Role))

			return next(c)
		}
	}
}

// RequireRole requires a specific role on top of RequireAuth
func (m *AuthMiddleware) RequireRole(requiredRole domain.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyUserRole).(string)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Unauthorized access",
				})
			}

			if role != string(requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": "Forbidden access",
				})
			}

			return next(c)
		}
	}
}

// RequireAdmin requires the admin role
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRole(domain.UserRoleAdmin)
}

func extractToken(c echo.Context) string {
	raw := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if after, found := strings.CutPrefix(raw, "Bearer "); found {
		return strings.TrimSpace(after)
	}
	return raw
}
