package handlers

//go:generate mockgen -source=index.go -destination=index_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

// CurrentUserer resolves a session to its user.
type CurrentUserer interface {
	CurrentUser(ctx context.Context, s *models.Session) (*models.UserDB, error)
}

// IndexResponse represents the landing page data
// swagger:model IndexResponse
type IndexResponse struct {
	// Logged in user, null for anonymous visitors
	User *models.UserDB `json:"user"`
}

// NewIndexHandler returns the landing page data.
// @Summary Landing page
// @Description Returns the logged in user, if any.
// @Tags pages
// @Produce json
// @Success 200 {object} handlers.IndexResponse
// @Failure 500 {object} models.FlashResponse
// @Router / [get]
func NewIndexHandler(svc CurrentUserer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.CurrentUser(r.Context(), middlewares.SessionFromContext(r.Context()))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "")
			return
		}
		writeJSON(w, http.StatusOK, IndexResponse{User: user})
	}
}
