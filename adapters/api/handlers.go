package api

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"fleetcalc/adapters/scenariofile"
	"fleetcalc/domain/fleet"
	"fleetcalc/internal/errors"
	"fleetcalc/internal/render"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	scenario, err := readScenario(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.service.Analyze(r.Context(), scenario)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := render.FormatMarkdown
	if q := r.URL.Query().Get("format"); q != "" {
		parsed, err := render.ParseFormat(q)
		if err != nil {
			s.writeError(w, err)
			return
		}
		format = parsed
	}

	scenario, err := readScenario(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := s.service.Analyze(r.Context(), scenario)
	if err != nil {
		s.writeError(w, err)
		return
	}
	body, err := render.Render(result, format)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func readScenario(r *http.Request) (*fleet.Scenario, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxScenarioBytes+1))
	if err != nil {
		return nil, errors.InvalidInput("failed to read request body")
	}
	if len(data) > maxScenarioBytes {
		return nil, errors.InvalidInput("request body too large")
	}
	return scenariofile.Decode(data)
}

// statusFor maps application error codes onto HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeValidationError, errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	code := errors.GetCode(err)
	if !errors.IsAppError(err) {
		code = errors.CodeInternalError
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
