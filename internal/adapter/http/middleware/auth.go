package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
)

// Context keys set by JWTAuth for downstream handlers and middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "role"
)

// RoleAdmin is the role required for all reference-data and rotation
// write operations.
const RoleAdmin = "admin"

// JWTAuth returns a middleware that validates a Bearer access token signed
// with the given HS256 secret and stores the token's subject and role
// claims in the request context under ContextKeyUserID and ContextKeyRole.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return response.Unauthorized(c, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return response.Unauthorized(c, "invalid token")
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return response.Unauthorized(c, "invalid token claims")
			}

			c.Set(ContextKeyUserID, claims["sub"])
			c.Set(ContextKeyRole, claims["role"])
			return next(c)
		}
	}
}

// RequireRole returns a middleware that rejects requests whose token role,
// as stored in the context by JWTAuth, is not one of the allowed roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || !allowed[role] {
				return response.Forbidden(c)
			}
			return next(c)
		}
	}
}
