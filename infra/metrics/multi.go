package metrics

import coremetrics "github.com/kilianp07/crewsched/core/metrics"

// MultiSink fans run records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.RunSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.RunSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the record to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordProjectOutcome forwards outcome events to sinks that support them.
func (m *MultiSink) RecordProjectOutcome(ev coremetrics.ProjectOutcomeEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ProjectOutcomeRecorder); ok {
			if err := rec.RecordProjectOutcome(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
