package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scarlett-vr/casino-core/domain/poker"
	"github.com/scarlett-vr/casino-core/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, poker.ErrInvalidCard):
		return http.StatusBadRequest
	case errors.Is(err, poker.ErrInvalidHandSize),
		errors.Is(err, poker.ErrDuplicateCard),
		errors.Is(err, poker.ErrInvalidSeat),
		errors.Is(err, poker.ErrNoLiveSeats),
		errors.Is(err, errWrongTable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrNoBlock):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrTampered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorReason is the metrics label for a rejected pool.
func errorReason(err error) string {
	switch {
	case errors.Is(err, poker.ErrInvalidHandSize):
		return "size"
	case errors.Is(err, poker.ErrDuplicateCard):
		return "duplicate"
	case errors.Is(err, poker.ErrInvalidCard):
		return "card"
	default:
		return "other"
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
