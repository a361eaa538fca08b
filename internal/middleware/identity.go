// Package middleware provides session identity, logging, metrics and tracing middleware.
package middleware

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const identityLocal = "identity"

// TokenVerifier decodes a session token. Any failure yields ok == false.
type TokenVerifier interface {
	Verify(token string) (models.SessionClaim, bool)
}

// Identity decodes the session cookie on every request and binds the result
// to the request as models.Authenticated or models.Anonymous. It never blocks
// a request; AuthRequired does that.
func Identity(verifier TokenVerifier, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			c.Locals(identityLocal, models.Identity(models.Anonymous{}))
			return c.Next()
		}

		claim, ok := verifier.Verify(token)
		if !ok {
			observability.SessionDecodeFailures.Inc()
			c.Locals(identityLocal, models.Identity(models.Anonymous{}))
			return c.Next()
		}

		c.Locals(identityLocal, models.Identity(models.Authenticated{Claim: claim}))
		c.Locals("userID", claim.UserID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), UserIDKey, claim.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// GetIdentity returns the identity bound by Identity. Requests that did not
// pass through Identity are treated as anonymous.
func GetIdentity(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals(identityLocal).(models.Identity); ok {
		return id
	}
	return models.Anonymous{}
}

// AuthRequired redirects anonymous requests to the home route and stops the
// handler chain. Must be placed after Identity.
func AuthRequired(redirectTo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch GetIdentity(c).(type) {
		case models.Authenticated:
			return c.Next()
		default:
			observability.AccessDenied.Inc()
			return c.Redirect(redirectTo, fiber.StatusFound)
		}
	}
}

// ClaimFrom returns the session claim of a request that passed AuthRequired.
func ClaimFrom(c *fiber.Ctx) (models.SessionClaim, bool) {
	switch id := GetIdentity(c).(type) {
	case models.Authenticated:
		return id.Claim, true
	default:
		return models.SessionClaim{}, false
	}
}
