package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

const KeyCurrentUser = "current_user"

// LoginRequired gates a route behind a bearer token: 401 when the token is
// absent, 403 when it does not verify. Decoded claims are attached to the
// request context.
func LoginRequired(authorizer *auth.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.Split(header, " ")
			if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
				return JsonError(c, http.StatusUnauthorized, "Access token required")
			}

			claims, err := authorizer.ValidateToken(parts[1])
			if err != nil {
				return JsonError(c, http.StatusForbidden, "Invalid or expired token")
			}

			c.Set(KeyCurrentUser, claims)
			return next(c)
		}
	}
}

// AdminRequired composes after LoginRequired.
func AdminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(KeyCurrentUser).(*auth.Claims)
			if !ok || claims.Role != user.RoleAdmin {
				return JsonError(c, http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *auth.Claims {
	return c.Get(KeyCurrentUser).(*auth.Claims)
}
