// Package schedule exposes scheduling runs, analytics and validation over a
// JSON HTTP API.
package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kilianp07/crewsched/core/generator"
	"github.com/kilianp07/crewsched/core/scheduler"
	"github.com/kilianp07/crewsched/infra/logger"
	"github.com/kilianp07/crewsched/store"
)

// Handler serves the scheduling API.
type Handler struct {
	runner Runner
	log    logger.Logger
}

// NewHandler builds a handler around the runner.
func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner, log: logger.New("api")}
}

// Register mounts every route on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.health)
	mux.HandleFunc("/api/generate", h.generate)
	mux.HandleFunc("/api/schedule", h.schedule)
	mux.HandleFunc("/api/validate", h.validate)
	mux.HandleFunc("/api/analytics", h.analytics)
	mux.HandleFunc("/api/recommendations", h.recommendations)
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, response{Success: false, Error: err.Error()})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "API is running"})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req := ScenarioRequest{Scenario: "balanced", Strategy: scheduler.StrategyGreedy}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	result, err := h.runner.RunScenario(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrUnknownScenario) || errors.Is(err, scheduler.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		}
		h.log.Errorf("scenario run failed: %v", err)
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "Scenario generated successfully", Data: result})
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.runner.ScheduleDocument(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scheduler.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		}
		h.log.Errorf("document run failed: %v", err)
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: result})
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var doc store.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s, err := store.Build(doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: s.Validate()})
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	result, ok := h.runner.LatestResult()
	if !ok {
		writeJSON(w, http.StatusNotFound, response{Success: false, Error: "no analytics available"})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: result.CapacityReport})
}

func (h *Handler) recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	result, ok := h.runner.LatestResult()
	if !ok {
		writeJSON(w, http.StatusNotFound, response{Success: false, Error: "no schedule available"})
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: map[string][]string{"recommendations": result.Recommendations}})
}
