package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/crewsched/core/logger"
	"github.com/kilianp07/crewsched/core/model"
	"github.com/kilianp07/crewsched/internal/eventbus"
)

// Greedy staffs projects one skill at a time using weighted candidate
// scores. It is a single-pass heuristic: a project that runs out of
// candidates is marked failed and processing moves on without undoing the
// assignments already made.
type Greedy struct {
	cfg Config
	rng *rand.Rand
	log logger.Logger
	bus eventbus.EventBus
}

// NewGreedy returns a greedy scheduler. The tie-break generator is owned by
// this instance so identical seed and input order reproduce bit-identical
// runs regardless of what else is going on in the process.
func NewGreedy(cfg Config, log logger.Logger) *Greedy {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Greedy{cfg: cfg, rng: rand.New(rand.NewSource(seed)), log: log}
}

// SetEventBus configures an optional bus for per-project outcome events.
func (g *Greedy) SetEventBus(bus eventbus.EventBus) { g.bus = bus }

type candidate struct {
	emp   *model.Employee
	score float64
}

// score ranks an employee for a slot on the project. The workload and
// overtime terms intentionally dominate the bounded tie-break noise, so the
// noise only decides exact ties.
func (g *Greedy) score(e *model.Employee, p *model.Project) float64 {
	var score float64
	if enabled(g.cfg.BalanceWorkload) {
		score += 1000 - e.TotalHours()
	}
	if enabled(g.cfg.MinimizeOvertime) {
		remaining := model.MaxRegularHoursPerDay - e.DailyHours(p.TimeSlot.Start)
		if remaining < 0 {
			remaining = 0
		}
		score += 100 * remaining
	}
	score += g.rng.Float64()
	return score
}

// rankCandidates scores the available holders of a skill and sorts them
// best first. Input order is the schedule's stable insertion order, so runs
// are reproducible under a fixed seed.
func (g *Greedy) rankCandidates(s *model.Schedule, p *model.Project, skill model.SkillType) []candidate {
	available := s.EmployeesWithSkillAvailableAt(skill, p.TimeSlot)
	cands := make([]candidate, 0, len(available))
	for _, e := range available {
		cands = append(cands, candidate{emp: e, score: g.score(e, p)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	return cands
}

// Schedule implements Strategy.
func (g *Greedy) Schedule(s *model.Schedule) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Success: true}

	projects := s.Projects()
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Priority != projects[j].Priority {
			return projects[i].Priority > projects[j].Priority
		}
		return projects[i].TimeSlot.Start.Before(projects[j].TimeSlot.Start)
	})

	for _, p := range projects {
		if p.IsFullyStaffed() {
			res.ScheduledProjects++
			continue
		}
		if g.scheduleProject(s, p, res.RunID) {
			res.ScheduledProjects++
			if g.bus != nil {
				g.bus.Publish(ProjectScheduledEvent{
					RunID:     res.RunID,
					ProjectID: p.ID,
					Name:      p.Name,
					Assignees: len(p.AssignedEmployeeIDs),
				})
			}
		} else {
			missing := s.MissingSkills(p)
			res.FailedProjects = append(res.FailedProjects, FailedProject{
				ID:            p.ID,
				Name:          p.Name,
				MissingSkills: missing,
			})
			if g.bus != nil {
				g.bus.Publish(ProjectFailedEvent{
					RunID:         res.RunID,
					ProjectID:     p.ID,
					Name:          p.Name,
					MissingSkills: missing,
				})
			}
		}
	}

	res.Statistics = Collect(s)
	if len(res.FailedProjects) > 0 {
		res.Success = false
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d projects could not be fully staffed", len(res.FailedProjects)))
	}
	g.log.Debugw("greedy run finished", map[string]any{
		"run_id":    res.RunID,
		"scheduled": res.ScheduledProjects,
		"failed":    len(res.FailedProjects),
	})
	return res, nil
}

// scheduleProject fills missing skills in declaration order until the
// project is covered or a skill has no candidates left. No backtracking.
// Covering every skill is not enough: a multi-skilled employee counts once,
// so the project succeeds only when all five seats are filled.
func (g *Greedy) scheduleProject(s *model.Schedule, p *model.Project, runID string) bool {
	for {
		missing := s.MissingSkills(p)
		if len(missing) == 0 {
			if p.IsFullyStaffed() {
				return true
			}
			g.log.Infof("run %s: project %d (%s) failed, skills covered by only %d of %d assignees",
				runID, p.ID, p.Name, len(p.AssignedEmployeeIDs), model.RequiredProjectSkills)
			return false
		}
		skill := missing[0]

		committed := false
		for _, c := range g.rankCandidates(s, p, skill) {
			if _, err := s.Assign(p.ID, c.emp.ID); err != nil {
				// A rejected commit skips to the next candidate, not the
				// whole project.
				g.log.Debugf("run %s: candidate %d rejected for project %d: %v",
					runID, c.emp.ID, p.ID, err)
				continue
			}
			committed = true
			break
		}
		if !committed {
			g.log.Infof("run %s: project %d (%s) failed, no candidate for %s",
				runID, p.ID, p.Name, skill)
			return false
		}
	}
}
