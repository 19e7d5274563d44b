package services

//go:generate mockgen -source=appointment.go -destination=appointment_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrIncompleteAppointment = errors.New("please fill in all appointment fields")
	ErrAppointmentNotFound   = errors.New("appointment not found")
)

// DoctorReader lists the doctor directory.
type DoctorReader interface {
	All(ctx context.Context) iter.Seq2[models.Doctor, error]
}

// AppointmentWriter stores appointments.
type AppointmentWriter interface {
	Save(ctx context.Context, a *models.Appointment) error
}

// AppointmentReader looks appointments up.
type AppointmentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AppointmentService serves the doctor directory and bookings.
type AppointmentService struct {
	doctors     DoctorReader
	writer      AppointmentWriter
	reader      AppointmentReader
	kafkaWriter KafkaWriter
}

// NewAppointmentService creates an AppointmentService. kafkaWriter may be nil.
func NewAppointmentService(
	doctors DoctorReader,
	writer AppointmentWriter,
	reader AppointmentReader,
	kafkaWriter KafkaWriter,
) *AppointmentService {
	return &AppointmentService{
		doctors:     doctors,
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// ListDoctors yields every doctor. Each range over the result queries the store again.
func (s *AppointmentService) ListDoctors(ctx context.Context) iter.Seq2[models.Doctor, error] {
	return s.doctors.All(ctx)
}

// BookAppointment stores the request and returns the new appointment id.
// The doctor id is neither required nor checked. Complete fields are stored exactly as submitted.
func (s *AppointmentService) BookAppointment(ctx context.Context, req models.AppointmentRequest) (uuid.UUID, error) {
	for _, v := range []string{req.PatientName, req.PatientEmail, req.PatientPhone, req.AppointmentDate} {
		if strings.TrimSpace(v) == "" {
			return uuid.Nil, ErrIncompleteAppointment
		}
	}

	a := &models.Appointment{
		AppointmentID:   uuid.New(),
		DoctorID:        optional(req.DoctorID),
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		AppointmentDate: req.AppointmentDate,
		Notes:           optional(req.Notes),
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, a); err != nil {
		logger.Log.Errorw("failed to save appointment", "doctorID", req.DoctorID, "err", err)
		return uuid.Nil, err
	}

	s.publishAppointment(ctx, models.AppointmentEvent{
		AppointmentID:   a.AppointmentID.String(),
		DoctorID:        req.DoctorID,
		PatientEmail:    a.PatientEmail,
		AppointmentDate: a.AppointmentDate,
		Timestamp:       a.CreatedAt.Unix(),
	})

	return a.AppointmentID, nil
}

// GetAppointment returns a stored appointment or ErrAppointmentNotFound.
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	a, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get appointment", "appointmentID", id, "err", err)
		return nil, err
	}
	if a == nil {
		return nil, ErrAppointmentNotFound
	}
	return a, nil
}

// ListAppointments returns the appointments booked with patientEmail, newest first.
func (s *AppointmentService) ListAppointments(ctx context.Context, patientEmail string) ([]models.Appointment, error) {
	list, err := s.reader.ListByPatientEmail(ctx, patientEmail)
	if err != nil {
		logger.Log.Errorw("failed to list appointments", "email", patientEmail, "err", err)
		return nil, err
	}
	return list, nil
}

// publishAppointment publishes a booking to Kafka.
func (s *AppointmentService) publishAppointment(ctx context.Context, event models.AppointmentEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "appointment_id", event.AppointmentID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal appointment for Kafka", "appointment_id", event.AppointmentID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish appointment to Kafka", "appointment_id", event.AppointmentID, "error", err)
	} else {
		logger.Log.Infow("Appointment published to Kafka", "appointment_id", event.AppointmentID)
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
