package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-auth-profile/internal/domain"
)

// httpError maps domain sentinels to HTTP responses. Anything not in the
// taxonomy (token verification, notification and store failures included)
// is logged with detail server-side and surfaced as a generic 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidOTP):
		writeError(w, http.StatusBadRequest, domain.ErrInvalidOTP.Error())
	case errors.Is(err, domain.ErrExpiredOTP):
		writeError(w, http.StatusBadRequest, domain.ErrExpiredOTP.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
	default:
		slog.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
