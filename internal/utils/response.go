package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"fieldbook/internal/apperr"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// ErrorFrom maps the apperr taxonomy onto HTTP statuses. Anything outside the
// taxonomy is an internal error and gets a generic body.
func ErrorFrom(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		Error(w, http.StatusBadRequest, trimClass(err))
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrConflict):
		Error(w, http.StatusConflict, trimClass(err))
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// trimClass drops the "invalid argument: " class prefix so callers see only
// the short message.
func trimClass(err error) string {
	msg := err.Error()
	for _, class := range []string{apperr.ErrInvalidArgument.Error() + ": ", apperr.ErrConflict.Error() + ": "} {
		if len(msg) > len(class) && msg[:len(class)] == class {
			return msg[len(class):]
		}
	}
	return msg
}

// IsInternal reports whether err falls outside the caller-visible taxonomy.
func IsInternal(err error) bool {
	return !errors.Is(err, apperr.ErrInvalidArgument) &&
		!errors.Is(err, apperr.ErrNotFound) &&
		!errors.Is(err, apperr.ErrConflict)
}
