package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/duespay/internal/pkg/jwt"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeyAdminID       = "user_id"
	ContextKeyAssociationID = "association_id"
	ContextKeyRole          = "user_role"
)

// JWTAuthMiddleware authenticates association administrators
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
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
			if claims.Role != jwtpkg.RoleAdmin {
				return utils.ForbiddenResponse(c, "Admin role required")
			}

			c.Set(ContextKeyAdminID, claims.AdminID)
			c.Set(ContextKeyAssociationID, claims.AssociationID)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}

// AssociationID returns the association the authenticated admin manages
func AssociationID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyAssociationID).(int64)
	return id, ok && id > 0
}
