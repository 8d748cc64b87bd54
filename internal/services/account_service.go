package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/the-usman/task-back-end/internal/mailer"
	"github.com/the-usman/task-back-end/internal/models"
	"github.com/the-usman/task-back-end/internal/store"
	"github.com/the-usman/task-back-end/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors the handlers map to response codes and messages.
var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrUserExists      = errors.New("user already exists")
	ErrWeakPassword    = errors.New("strong password required")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrMailSend        = errors.New("failed to send password reset email")
)

// Work factor for bcrypt, matching the cost the records were created with.
const bcryptCost = 10

// AccountServiceProvider defines the interface for the account workflow.
type AccountServiceProvider interface {
	Signup(ctx context.Context, firstName, lastName, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	SendPasswordReset(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, userID, password string) error
}

// AccountService implements the signup, login and password workflows on top
// of an injected user store and mail sink.
type AccountService struct {
	users       store.UserStore
	mail        mailer.Mailer
	frontEndURL string
}

// NewAccountService creates a new AccountService. frontEndURL is the base
// address password-reset links point at.
func NewAccountService(users store.UserStore, mail mailer.Mailer, frontEndURL string) *AccountService {
	return &AccountService{users: users, mail: mail, frontEndURL: frontEndURL}
}

// Signup validates the email and password, rejects duplicate addresses,
// stores the new record with a hashed password and returns the generated id.
// The confirmation email is sent in the background; its outcome never
// affects the result.
func (s *AccountService) Signup(ctx context.Context, firstName, lastName, email, password string) (string, error) {
	if !validate.Email(email) {
		return "", ErrInvalidEmail
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("querying user by email: %w", err)
	}

	if !validate.Password(password) {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.Insert(ctx, models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", fmt.Errorf("inserting user: %w", err)
	}

	// Fire-and-forget: signup success is independent of mail delivery.
	go func() {
		if err := s.mail.Send(email, "Confirmation Email", "Thank you for signing up!"); err != nil {
			log.Error().Err(err).Str("email", email).Msg("Failed to send confirmation email")
			return
		}
		log.Info().Str("email", email).Msg("Confirmation email sent")
	}()

	return id, nil
}

// Login authenticates a user by email and password. The returned record
// never carries the password hash.
func (s *AccountService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("querying user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidPassword
	}

	user.PasswordHash = ""
	return user, nil
}

// SendPasswordReset mails a reset link for the account registered under the
// given email. Unlike signup, the send result propagates to the caller.
func (s *AccountService) SendPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("querying user by email: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.frontEndURL, user.ID)
	text := fmt.Sprintf("Please click the following link to reset your password: %s", resetLink)

	if err := s.mail.Send(email, "Password Reset", text); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to send password reset email")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}
	return nil
}

// ChangePassword replaces the stored hash for the given record. Only the
// password field is touched.
func (s *AccountService) ChangePassword(ctx context.Context, userID, password string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("updating password: %w", err)
	}
	return nil
}
