// Package generator produces seeded synthetic crews and project slates for
// load testing and scenario analysis.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kilianp07/crewsched/core/model"
)

// DefaultSeed is the seed used when none is configured, so default runs are
// reproducible across machines.
const DefaultSeed = 42

const (
	minProjectDurationHours = 2.0
	maxProjectDurationHours = 8.0
	earliestStartHour       = 6
	latestStartHour         = 20
	secondSkillProbability  = 0.4
	fixedProjectProbability = 0.9
)

// DataGenerator emits reproducible synthetic schedules from a seeded source.
type DataGenerator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a generator. A zero seed falls back to DefaultSeed.
func New(seed int64) *DataGenerator {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &DataGenerator{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the generator was built with.
func (g *DataGenerator) Seed() int64 { return g.seed }

func (g *DataGenerator) employeeName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *DataGenerator) projectName(id int) string {
	adjective := projectAdjectives[g.rng.Intn(len(projectAdjectives))]
	kind := projectTypes[g.rng.Intn(len(projectTypes))]
	return fmt.Sprintf("%s %s #%d", adjective, kind, id)
}

// sampleSkills draws n distinct skills uniformly.
func (g *DataGenerator) sampleSkills(n int) []model.SkillType {
	all := model.AllSkills()
	out := make([]model.SkillType, 0, n)
	for _, idx := range g.rng.Perm(len(all))[:n] {
		out = append(out, all[idx])
	}
	return out
}

// randomSkillSet draws a skill set with the versatility split: 60%
// specialists with one skill, 30% with two, 10% with three or four.
func (g *DataGenerator) randomSkillSet() []model.SkillType {
	var n int
	switch r := g.rng.Float64(); {
	case r < 0.6:
		n = 1
	case r < 0.9:
		n = 2
	default:
		n = 3 + g.rng.Intn(2)
	}
	return g.sampleSkills(n)
}

// Employees generates count employees. The first count/5*5 employees rotate
// through the skills so every role has a guaranteed quota, each with a 40%
// chance of a second skill; the remainder get a random versatility profile.
func (g *DataGenerator) Employees(count int) []*model.Employee {
	all := model.AllSkills()
	perSkill := count / len(all)
	quota := perSkill * len(all)

	out := make([]*model.Employee, 0, count)
	for i := 0; i < count; i++ {
		var skills []model.SkillType
		if i < quota {
			primary := all[i%len(all)]
			skills = []model.SkillType{primary}
			if g.rng.Float64() < secondSkillProbability {
				others := make([]model.SkillType, 0, len(all)-1)
				for _, s := range all {
					if s != primary {
						others = append(others, s)
					}
				}
				skills = append(skills, others[g.rng.Intn(len(others))])
			}
		} else {
			skills = g.randomSkillSet()
		}
		out = append(out, model.NewEmployee(i+1, g.employeeName(), skills))
	}
	return out
}

// projectSlot picks a random day in [start, end], a start hour between
// 06:00 and 20:00 and a duration between two and eight hours.
func (g *DataGenerator) projectSlot(start, end time.Time) model.TimeSlot {
	daysRange := int(end.Sub(start).Hours() / 24)
	day := start.AddDate(0, 0, g.rng.Intn(daysRange+1))

	startHour := earliestStartHour + g.rng.Intn(latestStartHour-earliestStartHour+1)
	slotStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())

	duration := minProjectDurationHours + g.rng.Float64()*(maxProjectDurationHours-minProjectDurationHours)
	slotEnd := slotStart.Add(time.Duration(duration * float64(time.Hour)))

	return model.TimeSlot{Start: slotStart, End: slotEnd}
}

// Projects generates count projects spread over [start, end]. Every project
// requires all five skills in random order, gets a priority from 1 to 10 and
// is fixed 90% of the time.
func (g *DataGenerator) Projects(count int, start, end time.Time) ([]*model.Project, error) {
	out := make([]*model.Project, 0, count)
	for i := 0; i < count; i++ {
		id := i + 1
		p, err := model.NewProject(
			id,
			g.projectName(id),
			g.projectSlot(start, end),
			g.sampleSkills(model.RequiredProjectSkills),
			1+g.rng.Intn(10),
			g.rng.Float64() < fixedProjectProbability,
		)
		if err != nil {
			return nil, fmt.Errorf("generate project %d: %w", id, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Schedule generates a complete arena from the configuration.
func (g *DataGenerator) Schedule(cfg Config) (*model.Schedule, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := model.NewSchedule()
	for _, e := range g.Employees(cfg.NumEmployees) {
		if err := s.AddEmployee(e); err != nil {
			return nil, err
		}
	}
	projects, err := g.Projects(cfg.NumProjects, cfg.StartDate, cfg.EndDate)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if err := s.AddProject(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
