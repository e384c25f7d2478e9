package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/IdleGather_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse wraps a list payload with its size
type DataResponse struct {
	Count int         `json:"count"`
	Data  interface{} `json:"data"`
}

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 512)) },
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapDomainError converts engine and catalog errors to an HTTP status and a
// message safe to show the client.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSkillNotFound), errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidActivity):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, ErrMsgInternal
	}
}
