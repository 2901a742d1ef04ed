package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-match-engine/internal/schemas"
	"github.com/jonathan/job-match-engine/internal/types"
)

// MatchRequest represents the request body for /api/match.
type MatchRequest struct {
	Resume json.RawMessage `json:"resume"`
	Job    json.RawMessage `json:"job"`
}

// handleMatch scores one resume against one job posting. Validation failures
// are 400s; a degraded engine result is still a normal 200 — the engine never
// raises past its boundary.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var req MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Resume) == 0 || len(req.Job) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Both resume and job are required")
		return
	}

	if err := schemas.ValidateResumeProfile(req.Resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return
	}
	if err := schemas.ValidateJobPosting(req.Job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job: "+err.Error())
		return
	}

	var resume types.ResumeProfile
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+err.Error())
		return
	}
	var job types.JobPosting
	if err := json.Unmarshal(req.Job, &job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job: "+err.Error())
		return
	}

	result := s.engine.CalculateMatch(&resume, &job)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "job-match-engine",
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// withLogging adds per-request logging with a request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		s.logger.Info("request started",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr))
		next.ServeHTTP(w, r)
		s.logger.Info("request completed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
