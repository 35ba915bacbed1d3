package domain

import "time"

// Profile roles. Role stays empty until the user picks one.
const (
	RoleStudent      = "student"
	RoleProfessional = "professional"
)

// UserProfile is the persisted profile record, keyed by user_id with a
// uniqueness guarantee on email (email-index GSI).
type UserProfile struct {
	UserID         string    `json:"id" dynamodbav:"user_id"`
	Email          string    `json:"email" dynamodbav:"email"`
	Name           string    `json:"name" dynamodbav:"name"`
	Age            *int      `json:"age" dynamodbav:"age"`
	Role           string    `json:"role" dynamodbav:"role"`
	Phone          string    `json:"phone" dynamodbav:"phone"`
	Experience     string    `json:"experience" dynamodbav:"experience"`
	Specialization string    `json:"specialization" dynamodbav:"specialization"`
	Skills         []string  `json:"skills" dynamodbav:"skills"`
	GoogleSub      *string   `json:"-" dynamodbav:"google_sub"`
	CreatedAt      time.Time `json:"-" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"-" dynamodbav:"updated_at"`
}

// ProfileComplete reports whether name, age and role are all set.
// Derived on every read, never stored.
func (u *UserProfile) ProfileComplete() bool {
	return u.Name != "" && u.Age != nil && u.Role != ""
}

// UpdateProfileRequest is the allow-list for partial profile updates.
// Only fields present in the body are applied; anything else in the
// payload is dropped by the decoder.
type UpdateProfileRequest struct {
	Email          string    `json:"email" validate:"required,email"`
	Name           *string   `json:"name"`
	Age            *int      `json:"age" validate:"omitempty,gte=0"`
	Role           *string   `json:"role" validate:"omitempty,oneof=student professional"`
	Phone          *string   `json:"phone"`
	Experience     *string   `json:"experience"`
	Specialization *string   `json:"specialization"`
	Skills         *[]string `json:"skills"`
}
