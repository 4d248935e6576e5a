package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"

	"github.com/kids-in-business/kib_api/services"
	"github.com/kids-in-business/kib_api/shared"
)

type AuthMiddleware struct {
	context.DefaultService

	jwtSvc *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Configure(ctx *context.Context) error {
	svc.jwtSvc = ctx.Service(services.JWT_SVC).(*services.JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthMiddleware) Start() error {
	return nil
}

func (svc *AuthMiddleware) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		userID, role, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if userID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		c.Locals(shared.UserRole, role)
		c.Locals(shared.SubjectID, subjectForUser(userID))
		return c.Next()
	}
}

// OptionalAuth resolves the request subject without requiring a token.
// A valid bearer token binds the subject to the account; otherwise the
// anonymous device id from X-Device-ID stands in, so unauthenticated
// visitors still get their own classes, progress and wallet.
func (svc *AuthMiddleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
			if err == nil {
				if userID, role, err := svc.jwtSvc.VerifyJWTToken(token); err == nil && userID != "" {
					c.Locals(shared.UserID, userID)
					c.Locals(shared.UserRole, role)
					c.Locals(shared.SubjectID, subjectForUser(userID))
					return c.Next()
				}
			}
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		deviceID := strings.TrimSpace(c.Get(shared.DeviceIDHeader))
		if deviceID == "" {
			return shared.ResponseJSON(c, http.StatusBadRequest, "Bad Request", fmt.Sprintf("Missing %s header", shared.DeviceIDHeader))
		}

		c.Locals(shared.SubjectID, fmt.Sprintf("device:%s", deviceID))
		return c.Next()
	}
}

func subjectForUser(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
