package services

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/heartwired/valentine_api/shared"
)

// RequiredAuth rejects requests without a valid bearer token.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		claims, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if claims.UserID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, claims.UserID)
		c.Locals(shared.SessionID, claims.SessionID)
		c.Locals(shared.UserRole, claims.Role)
		return c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present and
// falls back to the guest role otherwise.
func (svc *AuthService) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(shared.UserRole, shared.RoleGuest)

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return c.Next()
		}

		claims, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || claims.UserID == "" {
			return c.Next()
		}

		c.Locals(shared.UserID, claims.UserID)
		c.Locals(shared.SessionID, claims.SessionID)
		c.Locals(shared.UserRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin must run after RequiredAuth.
func (svc *AuthService) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(shared.UserRole).(string)
		if role != shared.RoleAdmin {
			return shared.ResponseJSON(c, http.StatusForbidden, "Forbidden", "Admin access required")
		}
		return c.Next()
	}
}
