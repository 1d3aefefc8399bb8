package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"blogapi/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy to HTTP statuses in one place
func writeError(w http.ResponseWriter, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{ve.Field: ve.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "You do not have permission to perform this action"})
	case apperrors.IsBlob(err):
		logrus.WithError(err).Error("blob store failure")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Storage error"})
	default:
		logrus.WithError(err).Error("unhandled error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
	}
}
