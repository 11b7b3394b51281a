package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/openride/marketplace/internal/pkg/jwt"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. The
// authenticated principal id and role are placed on the echo context; every
// ownership check downstream keys off these, never off request-body fields.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("user_id", fmt.Sprintf("%v", userID))
			c.Set("user_role", fmt.Sprintf("%v", role))
			if admin, ok := (*claims)["admin"].(bool); ok {
				c.Set("is_admin", admin)
			}

			return next(c)
		}
	}
}

// AdminOnlyMiddleware rejects callers without the admin claim. It must run
// after JWTAuthMiddleware.
func AdminOnlyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return utils.ForbiddenResponse(c, "Admin privileges required")
			}
			return next(c)
		}
	}
}

// PrincipalID returns the authenticated user id set by JWTAuthMiddleware
func PrincipalID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

// PrincipalRole returns the authenticated user role set by JWTAuthMiddleware
func PrincipalRole(c echo.Context) string {
	role, _ := c.Get("user_role").(string)
	return role
}
