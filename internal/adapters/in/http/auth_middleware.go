package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shipments/internal/core/domain/model/user"
)

// Context keys under which the auth middleware stores the acting user.
const (
	contextKeyUserID = "authUserId"
	contextKeyRole   = "authRole"
)

// AuthMiddleware verifies the Bearer token and stores the acting user's
// id and role on the echo context for downstream handlers.
func AuthMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(contextKeyUserID, claims.UserID)
			c.Set(contextKeyRole, claims.Role)
			return next(c)
		}
	}
}

// RequireRoles rejects requests whose authenticated role is not in the
// allowed set. Must run after AuthMiddleware.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r.String()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(contextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// actingUserID returns the authenticated user id stored by AuthMiddleware.
func actingUserID(c echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}
