package middleware

import (
	"strings"

	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/aryaduta/ecommerce-admin-service/pkg/rbac"
	"github.com/aryaduta/ecommerce-admin-service/pkg/response"
	"github.com/aryaduta/ecommerce-admin-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRole   = "userRole"
)

// Authenticate verifies the bearer token and stashes the caller's identity
// on the echo context. A missing or invalid token is an authentication
// failure, distinct from the authorization failure RequireAction reports.
func Authenticate(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.ParseJWTToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			role, err := rbac.ParseRole(claims.Role)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set(contextKeyUserID, claims.UserID)
			c.Set(contextKeyRole, role)

			return next(c)
		}
	}
}

// RequireAction gates a route on the single rbac policy.
func RequireAction(action rbac.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(contextKeyRole).(rbac.Role)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if !rbac.Can(role, action) {
				return response.WriteErrorResponse(c, errs.ErrNoPermission, nil)
			}

			return next(c)
		}
	}
}

func UserID(c echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}

func UserRole(c echo.Context) rbac.Role {
	role, _ := c.Get(contextKeyRole).(rbac.Role)
	return role
}
