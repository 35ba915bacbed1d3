package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-auth-profile/internal/domain"
)

// UserView is the profile projection returned by every endpoint.
// The external identity id and timestamps are never exposed.
type UserView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Age            *int     `json:"age"`
	Role           string   `json:"role"`
	Phone          string   `json:"phone"`
	Experience     string   `json:"experience"`
	Specialization string   `json:"specialization"`
	Skills         []string `json:"skills"`
}

func toUserView(u *domain.UserProfile) *UserView {
	if u == nil {
		return nil
	}
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return &UserView{
		ID:             u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		Age:            u.Age,
		Role:           u.Role,
		Phone:          u.Phone,
		Experience:     u.Experience,
		Specialization: u.Specialization,
		Skills:         skills,
	}
}

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SignInEnvelope wraps identity sign-in and OTP verification responses.
type SignInEnvelope struct {
	Success         bool      `json:"success"`
	User            *UserView `json:"user"`
	ProfileComplete bool      `json:"profileComplete"`
}

// CheckEmailEnvelope wraps email existence check responses.
type CheckEmailEnvelope struct {
	Exists          bool      `json:"exists"`
	User            *UserView `json:"user,omitempty"`
	ProfileComplete *bool     `json:"profileComplete,omitempty"`
}

// ProfileEnvelope wraps profile fetch/update responses.
type ProfileEnvelope struct {
	Success bool      `json:"success"`
	User    *UserView `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
