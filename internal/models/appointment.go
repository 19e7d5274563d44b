package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a persisted booking request.
// DoctorID is stored verbatim and never checked against the doctors table.
type Appointment struct {
	AppointmentID   uuid.UUID `json:"id" db:"appointment_id"`
	DoctorID        *string   `json:"doctor_id,omitempty" db:"doctor_id"`
	PatientName     string    `json:"patient_name" db:"patient_name"`
	PatientEmail    string    `json:"patient_email" db:"patient_email"`
	PatientPhone    string    `json:"patient_phone" db:"patient_phone"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// AppointmentRequest carries the submitted booking form.
type AppointmentRequest struct {
	DoctorID        string
	PatientName     string
	PatientEmail    string
	PatientPhone    string
	AppointmentDate string
	Notes           string
}

// AppointmentEvent is published after an appointment has been stored.
type AppointmentEvent struct {
	AppointmentID   string `json:"appointment_id"`   // Booked appointment
	DoctorID        string `json:"doctor_id"`        // Requested doctor, may be empty
	PatientEmail    string `json:"patient_email"`    // Contact of the patient
	AppointmentDate string `json:"appointment_date"` // Date as submitted
	Timestamp       int64  `json:"timestamp"`        // Unix seconds of the booking
}
