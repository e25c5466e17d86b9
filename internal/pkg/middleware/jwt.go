package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/lokamart/lokamart/internal/pkg/jwt"
	"github.com/lokamart/lokamart/internal/pkg/models"
	"github.com/lokamart/lokamart/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyAccountType = "account_type"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.Unauthorized(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.Unauthorized(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.Unauthorized(c, "Invalid token")
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return utils.Unauthorized(c, "Invalid token: user_id is not a valid UUID")
			}

			accountType := claims.AccountType
			if accountType == "" {
				accountType = jwtpkg.AccountTypeReal
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyUserRole, claims.Role)
			c.Set(ContextKeyAccountType, accountType)

			return next(c)
		}
	}
}
