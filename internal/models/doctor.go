package models

import "github.com/google/uuid"

// Doctor is a directory entry. Records are seeded by admin tooling; the service only reads them.
type Doctor struct {
	DoctorID       uuid.UUID `json:"id" db:"doctor_id"`
	Name           string    `json:"name" db:"name"`
	Specialization string    `json:"specialization" db:"specialization"`
	Location       string    `json:"location" db:"location"`
	Available      bool      `json:"available" db:"available"`
}
