package handlers

//go:generate mockgen -source=doctors.go -destination=doctors_mock.go -package=handlers

import (
	"context"
	"iter"
	"net/http"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

// DoctorLister lists the doctor directory.
type DoctorLister interface {
	ListDoctors(ctx context.Context) iter.Seq2[models.Doctor, error]
}

// DoctorsResponse represents the doctor directory
// swagger:model DoctorsResponse
type DoctorsResponse struct {
	// Doctors ordered by name
	Doctors []models.Doctor `json:"doctors"`
}

// NewDoctorsHandler returns the doctor directory.
// @Summary List doctors
// @Tags appointments
// @Produce json
// @Success 200 {object} handlers.DoctorsResponse
// @Failure 500 {object} models.FlashResponse
// @Router /doctors [get]
func NewDoctorsHandler(svc DoctorLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctors := make([]models.Doctor, 0)
		for d, err := range svc.ListDoctors(r.Context()) {
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/")
				return
			}
			doctors = append(doctors, d)
		}

		writeJSON(w, http.StatusOK, DoctorsResponse{Doctors: doctors})
	}
}
