package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	httperrors "github.com/ivankudzin/heartlink/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

// writeStoreError maps a failed store call. Only context errors are expected
// from the simulated backend.
func writeStoreError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		httperrors.Write(w, http.StatusGatewayTimeout, httperrors.APIError{Code: "TIMEOUT", Message: message})
	case errors.Is(err, context.Canceled):
		httperrors.Write(w, http.StatusServiceUnavailable, httperrors.APIError{Code: "REQUEST_CANCELED", Message: message})
	default:
		writeInternal(w, "INTERNAL_ERROR", message)
	}
}

func writeValidation(w http.ResponseWriter, err error) {
	payload := httperrors.ValidationError{
		Code:    "VALIDATION_ERROR",
		Message: "request validation failed",
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		payload.Fields = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			payload.Fields[fe.Field()] = fe.Tag()
		}
	}

	httperrors.Write(w, http.StatusBadRequest, payload)
}
