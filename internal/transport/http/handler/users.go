package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-auth-profile/internal/application/user"
	"github.com/go-auth-profile/internal/domain"
	"github.com/go-auth-profile/internal/pkg/validate"
)

// UserHandler handles profile lookup and update endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

// CheckEmail is unauthenticated by design; it reveals whether an account
// exists for the queried address.
func (h *UserHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	u, exists, err := h.svc.CheckEmail(r.Context(), email)
	if err != nil {
		httpError(w, err)
		return
	}
	if !exists {
		writeJSON(w, http.StatusOK, CheckEmailEnvelope{Exists: false})
		return
	}
	complete := u.ProfileComplete()
	writeJSON(w, http.StatusOK, CheckEmailEnvelope{
		Exists:          true,
		User:            toUserView(u),
		ProfileComplete: &complete,
	})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileEnvelope{Success: true, User: toUserView(u)})
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.UpdateProfile(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileEnvelope{Success: true, User: toUserView(u)})
}
