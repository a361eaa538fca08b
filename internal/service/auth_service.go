// Package service implements the application's business logic on top of the repositories.
package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInput is the number of password bytes bcrypt consumes. Longer
// passwords are cut to it before hashing and comparing.
const bcryptMaxInput = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxInput {
		b = b[:bcryptMaxInput]
	}
	return b
}

// AuthService registers users and verifies their credentials.
type AuthService struct {
	userRepo repository.UserRepository
	cost     int
	log      *observability.AuthLogger
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
		log:      observability.NewAuthLogger(),
	}
}

// Register validates the signup form, hashes the password and stores the user.
func (s *AuthService) Register(ctx context.Context, form models.SignupForm) (user *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "AuthService.Register")
	defer func() {
		observability.EndSpan(span, err)
		observability.AuthAttempts.WithLabelValues("signup", outcome(err)).Inc()
		s.log.LogAttempt(ctx, "signup", outcome(err), userIDOf(user))
	}()

	if msgs := validation.Signup(form.Username, form.Password, form.ConfirmPassword); len(msgs) > 0 {
		return nil, models.NewValidationError(msgs...)
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(form.Password), s.cost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user = &models.User{
		Username:     form.Username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return user, nil
}

// Verify checks a login form. Unknown usernames and wrong passwords produce
// the same error.
func (s *AuthService) Verify(ctx context.Context, form models.LoginForm) (user *models.User, err error) {
	ctx, span := observability.StartSpan(ctx, "AuthService.Verify")
	defer func() {
		observability.EndSpan(span, err)
		observability.AuthAttempts.WithLabelValues("login", outcome(err)).Inc()
		s.log.LogAttempt(ctx, "login", outcome(err), userIDOf(user))
	}()

	if msgs := validation.Login(form.Username, form.Password); len(msgs) > 0 {
		return nil, models.NewValidationError(append(msgs, validation.MsgInvalidCredentials)...)
	}

	user, err = s.userRepo.GetByUsername(ctx, form.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError(validation.MsgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(form.Password)); err != nil {
		return nil, models.NewUnauthorizedError(validation.MsgInvalidCredentials)
	}
	return user, nil
}

func userIDOf(user *models.User) uint {
	if user == nil {
		return 0
	}
	return user.ID
}

func outcome(err error) string {
	var appErr *models.AppError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &appErr) && appErr.Code != models.CodeInternal:
		return "rejected"
	default:
		return "error"
	}
}
