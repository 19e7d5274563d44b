package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Register(ctx context.Context, email, username, password string) (*models.UserDB, error)
	StartSession(ctx context.Context, user *models.UserDB) (string, *models.Session, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// default: jane
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	models.FlashResponse

	// Session id, also set as a cookie
	SessionID string `json:"session_id,omitempty"`

	// Created user
	User *models.UserDB `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// The new user is logged in right away.
// @Summary Register a new user
// @Description Creates an account with a unique email and username and starts a session for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User registered and logged in"
// @Failure 400 {object} models.FlashResponse "Missing fields or invalid body"
// @Failure 409 {object} models.FlashResponse "Email or username already taken"
// @Failure 500 {object} models.FlashResponse "Store failure"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, cookie SessionCookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, "/signup")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeFlash(w, http.StatusBadRequest, "Please fill in all fields!", models.SeverityDanger, "/signup")
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeFlash(w, http.StatusConflict, "Email already in use!", models.SeverityDanger, "/signup")
			case errors.Is(err, services.ErrUsernameAlreadyExists):
				writeFlash(w, http.StatusConflict, "Username already taken!", models.SeverityDanger, "/signup")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeFlash(w, http.StatusConflict, "Username or email already exists!", models.SeverityDanger, "/signup")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeFlash(w, http.StatusInternalServerError,
					"An error occurred while creating the user: "+err.Error(), models.SeverityDanger, "/signup")
			}
			return
		}

		sessionID, _, err := svc.StartSession(r.Context(), user)
		if err != nil {
			// The account exists; only the automatic login failed.
			writeJSON(w, http.StatusCreated, SignupResponse{
				FlashResponse: models.FlashResponse{
					Flash:    models.NewFlash("Signup successful. Please log in.", models.SeverityWarning),
					Redirect: "/login",
				},
				User: user,
			})
			return
		}

		cookie.set(w, sessionID)
		writeJSON(w, http.StatusCreated, SignupResponse{
			FlashResponse: models.FlashResponse{
				Flash:    models.NewFlash("Signup successful. You are now logged in.", models.SeveritySuccess),
				Redirect: "/",
			},
			SessionID: sessionID,
			User:      user,
		})
	}
}
