package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

const appointmentColumns = `appointment_id, doctor_id, patient_name, patient_email, patient_phone,
	appointment_date, notes, created_at`

// AppointmentWriteRepository handles appointment inserts.
type AppointmentWriteRepository struct {
	db *sqlx.DB
}

func NewAppointmentWriteRepository(db *sqlx.DB) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db}
}

// Save stores the appointment as given.
func (r *AppointmentWriteRepository) Save(ctx context.Context, a *models.Appointment) error {
	const query = `
		INSERT INTO appointments (appointment_id, doctor_id, patient_name, patient_email,
			patient_phone, appointment_date, notes, created_at)
		VALUES (:appointment_id, :doctor_id, :patient_name, :patient_email,
			:patient_phone, :appointment_date, :notes, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, a)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{a.AppointmentID, a.DoctorID, a.PatientEmail, a.AppointmentDate},
		"error", err,
	)

	return err
}

// AppointmentReadRepository handles appointment lookups.
type AppointmentReadRepository struct {
	db *sqlx.DB
}

func NewAppointmentReadRepository(db *sqlx.DB) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db}
}

// GetByID returns the appointment, or nil when there is none.
func (r *AppointmentReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE appointment_id = $1`

	var a models.Appointment
	err := r.db.GetContext(ctx, &a, query, id)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByPatientEmail returns the appointments booked for email, newest first.
func (r *AppointmentReadRepository) ListByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE patient_email = $1
		ORDER BY created_at DESC`

	appointments := []models.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query, email)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{email},
		"result", len(appointments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return appointments, nil
}
