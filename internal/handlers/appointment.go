package handlers

//go:generate mockgen -source=appointment.go -destination=appointment_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/middlewares"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// AppointmentBooker stores booking requests.
type AppointmentBooker interface {
	BookAppointment(ctx context.Context, req models.AppointmentRequest) (uuid.UUID, error)
}

// AppointmentViewer reads the logged in patient's appointments.
type AppointmentViewer interface {
	GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListAppointments(ctx context.Context, patientEmail string) ([]models.Appointment, error)
}

// AppointmentRequest represents the booking form
// swagger:model AppointmentRequest
type AppointmentRequest struct {
	// Patient name
	// required: true
	// default: Jane Doe
	PatientName string `json:"patient_name"`

	// Patient email
	// required: true
	// default: jane@example.com
	PatientEmail string `json:"patient_email"`

	// Patient phone
	// required: true
	// default: 555-0100
	PatientPhone string `json:"patient_phone"`

	// Appointment date, stored as typed
	// required: true
	// default: 2024-01-01
	AppointmentDate string `json:"appointment_date"`

	// Notes for the doctor
	Notes string `json:"notes"`
}

// AppointmentResponse reports a stored booking
// swagger:model AppointmentResponse
type AppointmentResponse struct {
	models.FlashResponse

	// Id of the new appointment
	AppointmentID uuid.UUID `json:"appointment_id"`
}

// AppointmentsResponse lists appointments
// swagger:model AppointmentsResponse
type AppointmentsResponse struct {
	// Appointments, newest first
	Appointments []models.Appointment `json:"appointments"`
}

// AppointmentDetailResponse carries a single appointment
// swagger:model AppointmentDetailResponse
type AppointmentDetailResponse struct {
	Appointment *models.Appointment `json:"appointment"`
}

func bookAppointment(w http.ResponseWriter, r *http.Request, svc AppointmentBooker, doctorID, successMsg, failurePrefix, retry string) {
	var req AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, retry)
		return
	}

	id, err := svc.BookAppointment(r.Context(), models.AppointmentRequest{
		DoctorID:        doctorID,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrIncompleteAppointment) {
			writeFlash(w, http.StatusBadRequest, "Please fill in all fields!", models.SeverityDanger, retry)
			return
		}
		logger.Log.Errorw("internal server error", "err", err)
		writeFlash(w, http.StatusInternalServerError, failurePrefix+err.Error(), models.SeverityDanger, retry)
		return
	}

	writeJSON(w, http.StatusCreated, AppointmentResponse{
		FlashResponse: models.FlashResponse{
			Flash:    models.NewFlash(successMsg, models.SeveritySuccess),
			Redirect: "/appointments/" + id.String(),
		},
		AppointmentID: id,
	})
}

// NewScheduleAppointmentHandler returns an HTTP handler booking an appointment with a doctor.
// The doctor id is taken as given and not checked against the directory.
// @Summary Book an appointment with a doctor
// @Tags appointments
// @Accept json
// @Produce json
// @Param doctorID path string true "Doctor id"
// @Param appointmentRequest body handlers.AppointmentRequest true "Booking form"
// @Success 201 {object} handlers.AppointmentResponse "Appointment booked"
// @Failure 400 {object} models.FlashResponse "Incomplete form"
// @Failure 500 {object} models.FlashResponse "Store failure"
// @Router /schedule_appointment/{doctorID} [post]
func NewScheduleAppointmentHandler(svc AppointmentBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doctorID := chi.URLParam(r, "doctorID")
		bookAppointment(w, r, svc, doctorID,
			"Your appointment has been successfully booked!",
			"An error occurred while booking your appointment: ",
			"/schedule_appointment/"+doctorID,
		)
	}
}

// NewConfirmAppointmentHandler returns an HTTP handler booking an appointment without a doctor.
// @Summary Confirm an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentRequest body handlers.AppointmentRequest true "Booking form"
// @Success 201 {object} handlers.AppointmentResponse "Appointment confirmed"
// @Failure 400 {object} models.FlashResponse "Incomplete form"
// @Failure 500 {object} models.FlashResponse "Store failure"
// @Router /confirm_appointment [post]
func NewConfirmAppointmentHandler(svc AppointmentBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookAppointment(w, r, svc, "",
			"Appointment confirmed successfully.",
			"Failed to confirm appointment: ",
			"/doctors",
		)
	}
}

// NewListAppointmentsHandler returns the logged in user's appointments.
// @Summary List my appointments
// @Tags appointments
// @Produce json
// @Success 200 {object} handlers.AppointmentsResponse
// @Failure 401 {object} models.FlashResponse "Not logged in"
// @Router /appointments [get]
func NewListAppointmentsHandler(svc AppointmentViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())

		list, err := svc.ListAppointments(r.Context(), s.Email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/")
			return
		}
		if list == nil {
			list = []models.Appointment{}
		}

		writeJSON(w, http.StatusOK, AppointmentsResponse{Appointments: list})
	}
}

// NewGetAppointmentHandler returns one of the logged in user's appointments.
// Appointments booked under another email are reported as missing.
// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "Appointment id"
// @Success 200 {object} handlers.AppointmentDetailResponse
// @Failure 401 {object} models.FlashResponse "Not logged in"
// @Failure 404 {object} models.FlashResponse "Not found"
// @Router /appointments/{appointmentID} [get]
func NewGetAppointmentHandler(svc AppointmentViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := middlewares.SessionFromContext(r.Context())

		id, err := uuid.Parse(chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeFlash(w, http.StatusNotFound, "Appointment not found.", models.SeverityDanger, "/appointments")
			return
		}

		a, err := svc.GetAppointment(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrAppointmentNotFound) {
				writeFlash(w, http.StatusNotFound, "Appointment not found.", models.SeverityDanger, "/appointments")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeFlash(w, http.StatusInternalServerError, "Internal server error", models.SeverityDanger, "/appointments")
			return
		}
		if a.PatientEmail != s.Email {
			writeFlash(w, http.StatusNotFound, "Appointment not found.", models.SeverityDanger, "/appointments")
			return
		}

		writeJSON(w, http.StatusOK, AppointmentDetailResponse{Appointment: a})
	}
}
