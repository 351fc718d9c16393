package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kilianp07/crewsched/core/metrics"
)

func TestPromSink_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	ev := coremetrics.RunEvent{
		RunID:             "run-1",
		Strategy:          "greedy",
		Success:           true,
		ScheduledProjects: 3,
		FailedProjects:    1,
		TotalCost:         240,
		RegularHours:      160,
		OvertimeHours:     12,
		Duration:          150 * time.Millisecond,
		Time:              time.Now(),
	}
	if err := sink.RecordRun(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP scheduling_runs_total Total number of scheduling runs
# TYPE scheduling_runs_total counter
scheduling_runs_total{strategy="greedy",success="true"} 1
`
	if err := testutil.CollectAndCompare(sink.runs, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	expectedCost := `
# HELP scheduling_total_cost Total cost of the last scheduling run
# TYPE scheduling_total_cost gauge
scheduling_total_cost 240
`
	if err := testutil.CollectAndCompare(sink.cost, strings.NewReader(expectedCost)); err != nil {
		t.Errorf("unexpected cost metric: %v", err)
	}

	if c := testutil.CollectAndCount(sink.duration); c == 0 {
		t.Errorf("duration not recorded")
	}
}

func TestPromSink_RecordProjectOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := sink.RecordProjectOutcome(coremetrics.ProjectOutcomeEvent{
			ProjectID: i,
			Outcome:   "scheduled",
			Time:      time.Now(),
		}); err != nil {
			t.Fatalf("record error: %v", err)
		}
	}
	if err := sink.RecordProjectOutcome(coremetrics.ProjectOutcomeEvent{
		ProjectID: 9,
		Outcome:   "failed",
		Time:      time.Now(),
	}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP scheduling_project_outcomes_total Terminal project states produced by scheduling runs
# TYPE scheduling_project_outcomes_total counter
scheduling_project_outcomes_total{outcome="failed"} 1
scheduling_project_outcomes_total{outcome="scheduled"} 2
`
	if err := testutil.CollectAndCompare(sink.outcomes, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}
