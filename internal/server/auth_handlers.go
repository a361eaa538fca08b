package server

import (
	"fmt"

	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /
// @Summary Home page
// @Description Returns the signed-in user, or null for anonymous visitors
// @Tags pages
// @Produce json
// @Success 200 {object} object{user=object{id=int,username=string}}
// @Router / [get]
func (s *Server) Home(c *fiber.Ctx) error {
	var user *userView
	switch id := middleware.GetIdentity(c).(type) {
	case models.Authenticated:
		user = viewOf(id.Claim)
	case models.Anonymous:
	}
	return c.JSON(fiber.Map{"user": user})
}

// SignupPage handles GET /signup
// @Summary Signup form
// @Tags auth
// @Produce json
// @Success 200 {object} object{errors=[]string}
// @Router /signup [get]
func (s *Server) SignupPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"errors": []string{}})
}

// LoginPage handles GET /login
// @Summary Login form
// @Tags auth
// @Produce json
// @Success 200 {object} object{errors=[]string}
// @Router /login [get]
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"errors": []string{}})
}

// Signup handles POST /signedup
// @Summary User signup
// @Description Register a new account, set the session cookie and redirect to the dashboard
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Username (3-30 characters)"
// @Param password formData string true "Password (at least 8 characters)"
// @Param confirmpassword formData string true "Password confirmation"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /signedup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var form models.SignupForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}

	return s.startSession(c, user)
}

// Login handles POST /loggedin
// @Summary User login
// @Description Verify credentials, set the session cookie and redirect to the dashboard
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /loggedin [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var form models.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Verify(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}

	return s.startSession(c, user)
}

// Logout handles GET /logout
// @Summary Logout
// @Description Clear the session cookie and redirect home
// @Tags auth
// @Success 302
// @Router /logout [get]
func (s *Server) Logout(c *fiber.Ctx) error {
	if claim, ok := middleware.ClaimFrom(c); ok {
		s.authLog.LogSession(c.UserContext(), "cleared", claim.UserID)
	}
	s.clearSessionCookie(c)
	return c.Redirect("/", fiber.StatusFound)
}

func (s *Server) startSession(c *fiber.Ctx, user *models.User) error {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token, expiresAt)

	s.authLog.LogSession(c.UserContext(), "issued", user.ID)
	return c.Redirect(fmt.Sprintf("/dashboard/%d", user.ID), fiber.StatusFound)
}
