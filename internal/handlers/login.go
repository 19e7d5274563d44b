package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.Session, error)
}

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: jane
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	models.FlashResponse

	// Session id, also set as a cookie
	SessionID string `json:"session_id"`

	// Logged in identity
	Session *models.Session `json:"session"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks username and password and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session started"
// @Failure 400 {object} models.FlashResponse "Invalid request body"
// @Failure 401 {object} models.FlashResponse "Invalid credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, "/login")
			return
		}

		sessionID, session, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeFlash(w, http.StatusUnauthorized, "Invalid credentials. Please try again.", models.SeverityDanger, "/login")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/login")
			}
			return
		}

		cookie.set(w, sessionID)
		writeJSON(w, http.StatusOK, LoginResponse{
			FlashResponse: models.FlashResponse{
				Flash:    models.NewFlash("Login successful!", models.SeveritySuccess),
				Redirect: "/",
			},
			SessionID: sessionID,
			Session:   session,
		})
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// Logging out without a session succeeds.
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} models.FlashResponse "Logged out"
// @Failure 500 {object} models.FlashResponse "Session store failure"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middlewares.SessionIDFromContext(r.Context())); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/")
			return
		}

		cookie.clear(w)
		writeFlash(w, http.StatusOK, "You have been logged out.", models.SeverityInfo, "/login")
	}
}
