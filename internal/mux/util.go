package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func newErrorResponse(statusCode int, err error) errorResponse {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	return errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, newErrorResponse(statusCode, err))
}

// handErrorStatus maps an evaluation error to an HTTP status code
func handErrorStatus(err error) int {
	var parseErr *deck.ParseError
	switch {
	case errors.As(err, &parseErr), errors.Is(err, poker.ErrNoHands), errors.Is(err, errTooManyHands):
		return http.StatusBadRequest
	case errors.Is(err, poker.ErrInvalidHand):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeHandError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := handErrorStatus(err)
	if statusCode >= 500 {
		requestLogger(r).WithError(err).Error("could not evaluate hands")
	}

	writeJSON(w, statusCode, newErrorResponse(statusCode, err))
}
