package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// Optional profile attributes are pointers so that NULL columns stay absent.
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                                // Primary key
	Email          string    `json:"email" db:"email"`                               // Unique email
	Username       string    `json:"username" db:"username"`                         // Unique username
	PasswordHash   string    `json:"-" db:"password_hash"`                           // bcrypt hash, never serialized
	Age            *int      `json:"age,omitempty" db:"age"`                         // Non-negative age
	Address        *string   `json:"address,omitempty" db:"address"`                 // Free-text address
	PhoneNumber    *string   `json:"phone_number,omitempty" db:"phone_number"`       // Validated phone number
	State          *string   `json:"state,omitempty" db:"state"`                     // State or province
	Country        *string   `json:"country,omitempty" db:"country"`                 // Country
	ProfilePicture *string   `json:"profile_picture,omitempty" db:"profile_picture"` // Generated upload file name
	CreatedAt      time.Time `json:"created_at" db:"created_at"`                     // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`                     // Last update timestamp
}
