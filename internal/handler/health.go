package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/IdleGather_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// VersionResponse reports the running build
type VersionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once checker's loop is running
func HandleReadyz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgNotReady, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusNotReady,
				Message: ErrMsgNotReady,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleVersion reports the service name and version
func HandleVersion(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Service: service, Version: version})
	}
}
