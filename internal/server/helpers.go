package server

import (
	"errors"
	"log/slog"

	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondError writes err with the status its code maps to. Internal errors
// are logged with their cause; the client only sees a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}

// sessionClaim returns the caller's claim. Routes using it sit behind
// AuthRequired, so a missing claim is a wiring error.
func sessionClaim(c *fiber.Ctx) (models.SessionClaim, error) {
	claim, ok := middleware.ClaimFrom(c)
	if !ok {
		return models.SessionClaim{}, models.NewInternalError(errors.New("protected route reached without a session"))
	}
	return claim, nil
}

// userView is the public part of a session identity.
type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func viewOf(claim models.SessionClaim) *userView {
	return &userView{ID: claim.UserID, Username: claim.Username}
}
