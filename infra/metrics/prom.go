package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/crewsched/core/metrics"
)

// PromSink records scheduling runs in Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	cost     prometheus.Gauge
	hours    *prometheus.GaugeVec
	duration prometheus.Histogram
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_runs_total",
		Help: "Total number of scheduling runs",
	}, []string{"strategy", "success"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_project_outcomes_total",
		Help: "Terminal project states produced by scheduling runs",
	}, []string{"outcome"})
	cost := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduling_total_cost",
		Help: "Total cost of the last scheduling run",
	})
	hours := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scheduling_hours",
		Help: "Regular and overtime hours of the last scheduling run",
	}, []string{"kind"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "scheduling_run_duration_seconds",
		Help:    "Wall-clock duration of scheduling runs",
		Buckets: prometheus.DefBuckets,
	})

	for _, c := range []prometheus.Collector{runs, outcomes, cost, hours, duration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}

	return &PromSink{runs: runs, outcomes: outcomes, cost: cost, hours: hours, duration: duration}, nil
}

// RecordRun implements RunSink.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(ev.Strategy, strconv.FormatBool(ev.Success)).Inc()
	s.cost.Set(ev.TotalCost)
	s.hours.WithLabelValues("regular").Set(ev.RegularHours)
	s.hours.WithLabelValues("overtime").Set(ev.OvertimeHours)
	s.duration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordProjectOutcome implements ProjectOutcomeRecorder.
func (s *PromSink) RecordProjectOutcome(ev coremetrics.ProjectOutcomeEvent) error {
	s.outcomes.WithLabelValues(ev.Outcome).Inc()
	return nil
}
