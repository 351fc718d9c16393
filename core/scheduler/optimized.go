package scheduler

import (
	"github.com/kilianp07/crewsched/core/logger"
	"github.com/kilianp07/crewsched/core/model"
	"github.com/kilianp07/crewsched/internal/eventbus"
)

// maxImprovementIterations caps the improvement pass regardless of
// configuration.
const maxImprovementIterations = 50

// Improver attempts one cost-reducing local change on a staffed schedule.
// It reports whether it changed anything. Implementations must never reduce
// the number of staffed projects.
type Improver interface {
	Improve(s *model.Schedule, iteration int) (bool, error)
}

// NopImprover is the default extension point: it leaves the schedule
// untouched.
type NopImprover struct{}

// Improve implements Improver.
func (NopImprover) Improve(*model.Schedule, int) (bool, error) { return false, nil }

// Optimized composes the greedy scheduler with a bounded improvement pass.
type Optimized struct {
	greedy   *Greedy
	improver Improver
	maxIter  int
	log      logger.Logger
}

// NewOptimized returns an optimized scheduler with the no-op improver.
func NewOptimized(cfg Config, log logger.Logger) *Optimized {
	if log == nil {
		log = nopLogger{}
	}
	maxIter := cfg.MaxIterations
	if maxIter > maxImprovementIterations {
		maxIter = maxImprovementIterations
	}
	return &Optimized{
		greedy:   NewGreedy(cfg, log),
		improver: NopImprover{},
		maxIter:  maxIter,
		log:      log,
	}
}

// SetImprover swaps in a custom improvement step.
func (o *Optimized) SetImprover(imp Improver) {
	if imp != nil {
		o.improver = imp
	}
}

// SetEventBus configures the bus on the underlying greedy scheduler.
func (o *Optimized) SetEventBus(bus eventbus.EventBus) {
	o.greedy.SetEventBus(bus)
}

// Schedule implements Strategy: a greedy pass followed by up to maxIter
// improvement attempts. A failed attempt is skipped, never fatal.
func (o *Optimized) Schedule(s *model.Schedule) (*Result, error) {
	res, err := o.greedy.Schedule(s)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return res, nil
	}

	initialCost := s.TotalCost()
	bestCost := initialCost
	improvements := 0

	for i := 0; i < o.maxIter; i++ {
		improved, err := o.improver.Improve(s, i)
		if err != nil {
			o.log.Debugf("improvement iteration %d: %v", i, err)
			continue
		}
		if improved {
			improvements++
		}
		if cost := s.TotalCost(); cost < bestCost {
			bestCost = cost
		}
	}

	opt := &Optimization{
		InitialCost:      initialCost,
		FinalCost:        bestCost,
		Improvement:      initialCost - bestCost,
		ImprovementsMade: improvements,
	}
	if initialCost > 0 {
		opt.ImprovementPercentage = (initialCost - bestCost) / initialCost * 100
	}
	res.Optimization = opt
	res.Statistics = Collect(s)
	return res, nil
}
