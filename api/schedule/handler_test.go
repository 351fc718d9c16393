package schedule

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kilianp07/crewsched/core/generator"
	"github.com/kilianp07/crewsched/core/model"
	"github.com/kilianp07/crewsched/core/scheduler"
	"github.com/kilianp07/crewsched/store"
)

type stubRunner struct {
	latest    *AnalysisResult
	lastReq   ScenarioRequest
	runErr    error
	docResult *DocumentResult
}

func (s *stubRunner) RunScenario(req ScenarioRequest) (*AnalysisResult, error) {
	s.lastReq = req
	if s.runErr != nil {
		return nil, s.runErr
	}
	s.latest = &AnalysisResult{
		Metadata:        generator.Metadata{ScenarioName: req.Scenario},
		Scheduling:      &scheduler.Result{Success: true},
		Recommendations: []string{"hire more editors"},
	}
	return s.latest, nil
}

func (s *stubRunner) ScheduleDocument(DocumentRequest) (*DocumentResult, error) {
	return s.docResult, nil
}

func (s *stubRunner) LatestResult() (*AnalysisResult, bool) {
	return s.latest, s.latest != nil
}

func newServer(runner Runner) *http.ServeMux {
	mux := http.NewServeMux()
	NewHandler(runner).Register(mux)
	return mux
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	newServer(&stubRunner{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out response
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Fatalf("unexpected body %+v", out)
	}
}

func TestGenerateDefaultsScenarioAndStrategy(t *testing.T) {
	runner := &stubRunner{}
	rr := httptest.NewRecorder()
	newServer(runner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if runner.lastReq.Scenario != "balanced" || runner.lastReq.Strategy != scheduler.StrategyGreedy {
		t.Errorf("defaults not applied: %+v", runner.lastReq)
	}
}

func TestGenerateUnknownScenarioIsBadRequest(t *testing.T) {
	runner := &stubRunner{runErr: generator.ErrUnknownScenario}
	body := bytes.NewBufferString(`{"scenario":"crunch_time"}`)
	rr := httptest.NewRecorder()
	newServer(runner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate", body))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestGenerateRejectsGet(t *testing.T) {
	rr := httptest.NewRecorder()
	newServer(&stubRunner{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/generate", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rr.Code)
	}
}

func TestAnalyticsBeforeAnyRunIsNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	newServer(&stubRunner{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
}

func TestRecommendationsAfterRun(t *testing.T) {
	runner := &stubRunner{}
	mux := newServer(runner)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("generate status %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recommendations", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Recommendations []string `json:"recommendations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Data.Recommendations) != 1 {
		t.Fatalf("recommendations %+v", out.Data)
	}
}

func validDocument(t *testing.T) store.Document {
	t.Helper()
	s := model.NewSchedule()
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	slot, err := model.NewTimeSlot(base, base.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("slot: %v", err)
	}
	p, err := model.NewProject(1, "Evening News", slot, model.AllSkills(), 5, true)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if err := s.AddProject(p); err != nil {
		t.Fatalf("add project: %v", err)
	}
	return store.Snapshot(s)
}

func TestValidateDocument(t *testing.T) {
	doc := validDocument(t)
	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rr := httptest.NewRecorder()
	newServer(&stubRunner{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	var out struct {
		Success bool                   `json:"success"`
		Data    model.ValidationResult `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Data.Valid || out.Data.Stats.TotalProjects != 1 {
		t.Fatalf("validation %+v", out.Data)
	}
}

func TestValidateRejectsBrokenDocument(t *testing.T) {
	doc := validDocument(t)
	doc.Projects[0].RequiredSkills = []string{"Editor"}
	body, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rr := httptest.NewRecorder()
	newServer(&stubRunner{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewReader(body)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestScheduleDocument(t *testing.T) {
	runner := &stubRunner{docResult: &DocumentResult{Scheduling: &scheduler.Result{Success: true}}}
	body := bytes.NewBufferString(`{"strategy":"greedy","schedule":{"employees":[],"projects":[]}}`)
	rr := httptest.NewRecorder()
	newServer(runner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/schedule", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
}
