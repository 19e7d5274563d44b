package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/pregnancy-care/internal/jwt"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// PasswordResetRequester starts the forgot-password flow.
type PasswordResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// PasswordResetter validates reset tokens and applies new passwords.
type PasswordResetter interface {
	ValidateResetToken(ctx context.Context, token string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ForgotPasswordRequest represents the JSON body of a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Account email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body carrying the new password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// New password
	// required: true
	// default: newsecret123
	Password string `json:"password"`
}

// ResetTokenResponse reports a usable reset token
// swagger:model ResetTokenResponse
type ResetTokenResponse struct {
	// Email the token was issued for
	Email string `json:"email"`

	// The token itself, to be posted back with the new password
	Token string `json:"token"`
}

// NewForgotPasswordHandler returns an HTTP handler that mails a reset link.
// @Summary Request a password reset
// @Description Mails a password reset link valid for one hour. Mail delivery problems are not reported.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Account email"
// @Success 200 {object} models.FlashResponse "Reset link sent"
// @Failure 400 {object} models.FlashResponse "Invalid request body"
// @Failure 404 {object} models.FlashResponse "No account with that email"
// @Router /forgot_password [post]
func NewForgotPasswordHandler(svc PasswordResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
			writeFlash(w, http.StatusBadRequest, "Please enter your email address.", models.SeverityDanger, "/forgot_password")
			return
		}

		err := svc.RequestPasswordReset(r.Context(), strings.TrimSpace(req.Email))
		switch {
		case err == nil:
			writeFlash(w, http.StatusOK, "A password reset link has been sent to your email.", models.SeveritySuccess, "/forgot_password")
		case errors.Is(err, services.ErrUserNotFound):
			writeFlash(w, http.StatusNotFound, "No account found with that email address.", models.SeverityDanger, "/forgot_password")
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/forgot_password")
		}
	}
}

// writeTokenError answers a rejected reset token.
func writeTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		writeFlash(w, http.StatusBadRequest, "The password reset link has expired.", models.SeverityDanger, "/forgot_password")
	case errors.Is(err, jwt.ErrTokenInvalid):
		writeFlash(w, http.StatusBadRequest, "The password reset link is invalid.", models.SeverityDanger, "/forgot_password")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/forgot_password")
	}
}

// NewCheckResetTokenHandler returns an HTTP handler that checks a reset link before the form is shown.
// @Summary Check a password reset link
// @Tags auth
// @Produce json
// @Param token path string true "Reset token"
// @Success 200 {object} handlers.ResetTokenResponse "Token usable"
// @Failure 400 {object} models.FlashResponse "Token expired or invalid"
// @Router /reset_password/{token} [get]
func NewCheckResetTokenHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		email, err := svc.ValidateResetToken(r.Context(), token)
		if err != nil {
			writeTokenError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ResetTokenResponse{Email: email, Token: token})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password from a reset link.
// @Summary Reset password
// @Description Sets a new password for the account the token was issued for. The old password is not needed.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "New password"
// @Success 200 {object} models.FlashResponse "Password changed"
// @Failure 400 {object} models.FlashResponse "Token expired or invalid, or empty password"
// @Router /reset_password/{token} [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, "/reset_password/"+token)
			return
		}

		err := svc.ResetPassword(r.Context(), token, req.Password)
		switch {
		case err == nil:
			writeFlash(w, http.StatusOK, "Your password has been reset successfully. Please login.", models.SeveritySuccess, "/login")
		case errors.Is(err, services.ErrMissingFields):
			writeFlash(w, http.StatusBadRequest, "Please enter a new password.", models.SeverityDanger, "/reset_password/"+token)
		default:
			writeTokenError(w, err)
		}
	}
}
