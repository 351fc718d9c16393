// Package app wires configuration, logging, metrics sinks, the event bus
// and the HTTP API into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	apischedule "github.com/kilianp07/crewsched/api/schedule"
	"github.com/kilianp07/crewsched/config"
	"github.com/kilianp07/crewsched/core/analyzer"
	"github.com/kilianp07/crewsched/core/generator"
	coremetrics "github.com/kilianp07/crewsched/core/metrics"
	"github.com/kilianp07/crewsched/core/scheduler"
	"github.com/kilianp07/crewsched/infra/logger"
	"github.com/kilianp07/crewsched/infra/metrics"
	"github.com/kilianp07/crewsched/internal/eventbus"
	"github.com/kilianp07/crewsched/store"
)

// Service orchestrates scenario runs and serves them over the API.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	bus  eventbus.EventBus
	sink coremetrics.RunSink

	mu     sync.RWMutex
	latest *apischedule.AnalysisResult
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("service")

	var sinks []coremetrics.RunSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken, cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket))
	}
	var sink coremetrics.RunSink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	svc := &Service{cfg: cfg, log: log, bus: bus, sink: sink}
	go svc.watchEvents(bus.Subscribe())
	return svc, nil
}

// watchEvents logs per-project outcomes and forwards them to the sink.
func (s *Service) watchEvents(ch <-chan eventbus.Event) {
	for ev := range ch {
		switch e := ev.(type) {
		case scheduler.ProjectScheduledEvent:
			s.log.Debugf("project %d (%s) scheduled with %d assignees", e.ProjectID, e.Name, e.Assignees)
			s.recordOutcome(e.RunID, e.ProjectID, e.Name, "scheduled")
		case scheduler.ProjectFailedEvent:
			s.log.Infof("project %d (%s) failed: missing skills %v", e.ProjectID, e.Name, e.MissingSkills)
			s.recordOutcome(e.RunID, e.ProjectID, e.Name, "failed")
		}
	}
}

func (s *Service) recordOutcome(runID string, projectID int, name, outcome string) {
	rec, ok := s.sink.(coremetrics.ProjectOutcomeRecorder)
	if !ok {
		return
	}
	err := rec.RecordProjectOutcome(coremetrics.ProjectOutcomeEvent{
		RunID:     runID,
		ProjectID: projectID,
		Name:      name,
		Outcome:   outcome,
		Time:      time.Now(),
	})
	if err != nil {
		s.log.Errorf("record project outcome: %v", err)
	}
}

// newStrategy builds the configured strategy, optionally overridden per
// request, and attaches the event bus.
func (s *Service) newStrategy(override string) (scheduler.Strategy, string, error) {
	cfg := s.cfg.Scheduler
	if override != "" {
		cfg.Strategy = override
	}
	strat, err := scheduler.New(cfg, s.log)
	if err != nil {
		return nil, "", err
	}
	switch st := strat.(type) {
	case *scheduler.Greedy:
		st.SetEventBus(s.bus)
	case *scheduler.Optimized:
		st.SetEventBus(s.bus)
	}
	return strat, cfg.Strategy, nil
}

func (s *Service) recordRun(res *scheduler.Result, strategy string, duration time.Duration) {
	err := s.sink.RecordRun(coremetrics.RunEvent{
		RunID:             res.RunID,
		Strategy:          strategy,
		Success:           res.Success,
		ScheduledProjects: res.ScheduledProjects,
		FailedProjects:    len(res.FailedProjects),
		TotalCost:         res.Statistics.TotalCost,
		RegularHours:      res.Statistics.TotalRegularHours,
		OvertimeHours:     res.Statistics.TotalOvertimeHours,
		Duration:          duration,
		Time:              time.Now(),
	})
	if err != nil {
		s.log.Errorf("record run: %v", err)
	}
}

// RunScenario generates a scenario preset, schedules it and analyzes the
// outcome. Request entity counts override the preset when set.
func (s *Service) RunScenario(req apischedule.ScenarioRequest) (*apischedule.AnalysisResult, error) {
	sc, err := generator.ScenarioByName(req.Scenario)
	if err != nil {
		return nil, err
	}

	gcfg := s.cfg.Generator
	gcfg.NumEmployees = sc.NumEmployees
	gcfg.NumProjects = sc.NumProjects
	if req.NumEmployees > 0 {
		gcfg.NumEmployees = req.NumEmployees
	}
	if req.NumProjects > 0 {
		gcfg.NumProjects = req.NumProjects
	}

	gen := generator.New(gcfg.Seed)
	sched, err := gen.Schedule(gcfg)
	if err != nil {
		return nil, fmt.Errorf("generate scenario %s: %w", sc.Name, err)
	}
	s.log.Infof("scenario %s: generated %d employees, %d projects", sc.Name, gcfg.NumEmployees, gcfg.NumProjects)

	strat, strategyName, err := s.newStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	result, err := strat.Schedule(sched)
	if err != nil {
		return nil, fmt.Errorf("schedule scenario %s: %w", sc.Name, err)
	}
	s.recordRun(result, strategyName, time.Since(start))

	res := &apischedule.AnalysisResult{
		Metadata: generator.Metadata{
			ScenarioName: sc.Name,
			Description:  sc.Description,
			NumEmployees: gcfg.NumEmployees,
			NumProjects:  gcfg.NumProjects,
			Seed:         gen.Seed(),
		},
		Scheduling:      result,
		CapacityReport:  analyzer.NewCapacityAnalyzer(sched, s.cfg.API.AnalysisPeriodDays).Report(),
		Recommendations: analyzer.Recommendations(sched),
	}

	s.mu.Lock()
	s.latest = res
	s.mu.Unlock()
	return res, nil
}

// ScheduleDocument runs the strategy over an uploaded schedule document and
// returns the scheduled document with its validation.
func (s *Service) ScheduleDocument(req apischedule.DocumentRequest) (*apischedule.DocumentResult, error) {
	sched, err := store.Build(req.Schedule)
	if err != nil {
		return nil, fmt.Errorf("build schedule: %w", err)
	}
	strat, strategyName, err := s.newStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := strat.Schedule(sched)
	if err != nil {
		return nil, err
	}
	s.recordRun(result, strategyName, time.Since(start))

	return &apischedule.DocumentResult{
		Scheduling: result,
		Validation: sched.Validate(),
		Schedule:   store.Snapshot(sched),
	}, nil
}

// LatestResult returns the most recent scenario analysis.
func (s *Service) LatestResult() (*apischedule.AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}

// Run serves the API until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	apischedule.NewHandler(s).Register(mux)
	srv := &http.Server{Addr: s.cfg.API.Address, Handler: mux}

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("api shutdown: %v", err)
		}
	}()

	s.log.Infof("api listening on %s", s.cfg.API.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
