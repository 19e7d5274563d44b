package services

//go:generate mockgen -source=password_reset.go -destination=password_reset_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const resetMailSubject = "Password Reset Request"

// PasswordWriter overwrites stored password hashes.
type PasswordWriter interface {
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// ResetTokenSigner issues and verifies password-reset tokens.
type ResetTokenSigner interface {
	Issue(ctx context.Context, email string) (string, error)
	Redeem(ctx context.Context, token string, maxAge time.Duration) (string, error)
}

// Mailer delivers a plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// PasswordResetService runs the forgot-password flow.
type PasswordResetService struct {
	reader  UserReader
	writer  PasswordWriter
	tokens  ResetTokenSigner
	mailer  Mailer
	baseURL string
	maxAge  time.Duration
}

// NewPasswordResetService creates a PasswordResetService. Reset links are built as
// baseURL + "/reset_password/" + token and stay valid for maxAge.
func NewPasswordResetService(
	reader UserReader,
	writer PasswordWriter,
	tokens ResetTokenSigner,
	mailer Mailer,
	baseURL string,
	maxAge time.Duration,
) *PasswordResetService {
	return &PasswordResetService{
		reader:  reader,
		writer:  writer,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxAge:  maxAge,
	}
}

// RequestPasswordReset mails a reset link to email. Delivery failures are logged only.
func (s *PasswordResetService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "err", err)
		return err
	}
	if user == nil {
		logger.Log.Infow("password reset for unknown email", "email", email)
		return ErrUserNotFound
	}

	token, err := s.tokens.Issue(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to issue reset token", "err", err)
		return err
	}

	body := fmt.Sprintf("Click the link to reset your password: %s/reset_password/%s", s.baseURL, token)
	if err := s.mailer.Send(ctx, user.Email, resetMailSubject, body); err != nil {
		logger.Log.Errorw("failed to send reset mail", "email", user.Email, "err", err)
	}

	return nil
}

// ValidateResetToken returns the email a token was issued for.
// Tokens are not consumed; they can be redeemed repeatedly until they expire.
func (s *PasswordResetService) ValidateResetToken(ctx context.Context, token string) (string, error) {
	return s.tokens.Redeem(ctx, token, s.maxAge)
}

// ResetPassword redeems token and sets newPassword for its email.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.ValidateResetToken(ctx, token)
	if err != nil {
		logger.Log.Infow("reset token rejected", "err", err)
		return err
	}
	return s.SetPassword(ctx, email, newPassword)
}

// SetPassword overwrites the password of the user with email without asking for the old one.
func (s *PasswordResetService) SetPassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := s.writer.UpdatePassword(ctx, email, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "email", email, "err", err)
		return err
	}

	return nil
}
