package roster

import (
	"log/slog"
	"sort"
	"time"

	"github.com/wardline/rostering-backend-go/internal/domain/employee"
	"github.com/wardline/rostering-backend-go/internal/domain/roster"
	"github.com/wardline/rostering-backend-go/internal/pkg/random"
)

// Problem is one in-memory scheduling run. The engine never touches
// persistence; the caller assembles the problem and owns the output.
type Problem struct {
	Employees    []employee.Employee
	Requirements []roster.CoverageRequirement
	StartDate    time.Time
	EndDate      time.Time
	Options      roster.GenerationOptions

	// Unavailable marks employees on approved leave: dateKey -> employee id.
	Unavailable map[string]map[string]bool
}

// Result is the outcome of one run. Gaps report slots that could not be
// filled to the requested headcount; under-coverage is never an error.
type Result struct {
	Assignments []roster.ScheduleAssignment
	Gaps        []roster.CoverageGap
	Workloads   map[string]roster.EmployeeWorkload
}

// Engine fills a multi-week three-shift roster with a constraint-aware
// greedy pass. One invocation is single-threaded and synchronous;
// independent runs may execute in parallel with their own ledger.
type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// Generate validates the problem and runs the date-ascending assignment
// loop. Precondition violations return before any work is done.
func (e *Engine) Generate(p Problem, rng random.Source) (Result, error) {
	if p.StartDate.After(p.EndDate) {
		return Result{}, roster.ErrInvalidDateRange
	}
	if len(p.Employees) == 0 {
		return Result{}, roster.ErrEmptyRoster
	}
	for _, req := range p.Requirements {
		if !req.ShiftType.IsWorking() {
			return Result{}, roster.ErrUnknownShiftType
		}
	}

	sc := &scorer{rng: rng, opts: p.Options}
	ledger := NewLedger(p.Employees)

	// Per-employee shift history for the lookback window.
	history := make(map[string]map[string]roster.ShiftType, len(p.Employees))
	for _, emp := range p.Employees {
		history[emp.ID] = make(map[string]roster.ShiftType)
	}

	byLevel := bucketByLevel(p.Employees)
	byDate := make(map[string][]roster.CoverageRequirement)
	for _, req := range p.Requirements {
		key := roster.DateKey(req.Date)
		byDate[key] = append(byDate[key], req)
	}

	var result Result

	for date := p.StartDate; !date.After(p.EndDate); date = date.AddDate(0, 0, 1) {
		key := roster.DateKey(date)
		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday

		assignedToday := make(map[string]bool)

		for _, req := range byDate[key] {
			selected := e.fillRequirement(fillContext{
				req:           req,
				date:          date,
				isWeekend:     isWeekend,
				scorer:        sc,
				ledger:        ledger,
				history:       history,
				byLevel:       byLevel,
				assignedToday: assignedToday,
				onLeave:       p.Unavailable[key],
			}, &result.Gaps)

			// No empty placeholder when nothing could be filled.
			if len(selected) == 0 {
				continue
			}

			result.Assignments = append(result.Assignments, roster.ScheduleAssignment{
				Date:        date,
				ShiftType:   req.ShiftType,
				EmployeeIDs: selected,
			})
		}
	}

	result.Workloads = ledger.Snapshot()
	return result, nil
}

type fillContext struct {
	req           roster.CoverageRequirement
	date          time.Time
	isWeekend     bool
	scorer        *scorer
	ledger        *Ledger
	history       map[string]map[string]roster.ShiftType
	byLevel       map[int][]employee.Employee
	assignedToday map[string]bool
	onLeave       map[string]bool
}

// fillRequirement selects the top scorers per skill level. A score at or
// below zero marks the candidate unsuitable; the slot then stays short
// rather than forcing an unsafe assignment.
func (e *Engine) fillRequirement(fc fillContext, gaps *[]roster.CoverageGap) []string {
	var selected []string
	juniorSelected := false

	levels := make([]roster.LevelRequirement, len(fc.req.LevelRequirements))
	copy(levels, fc.req.LevelRequirements)
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })

	for _, lr := range levels {
		ranked := e.rankCandidates(fc, lr.Level, juniorSelected)

		filled := 0
		for _, rc := range ranked {
			if filled == lr.Count {
				break
			}
			if rc.score <= 0 {
				break
			}
			fc.assignedToday[rc.employeeID] = true
			fc.ledger.Update(rc.employeeID, fc.req.ShiftType, fc.isWeekend, fc.date)
			fc.history[rc.employeeID][roster.DateKey(fc.date)] = fc.req.ShiftType
			selected = append(selected, rc.employeeID)
			if lr.Level == 1 {
				juniorSelected = true
			}
			filled++
		}

		if filled < lr.Count {
			e.log.Warn("coverage gap",
				slog.String("date", roster.DateKey(fc.date)),
				slog.String("shift_type", string(fc.req.ShiftType)),
				slog.Int("level", lr.Level),
				slog.Int("requested", lr.Count),
				slog.Int("filled", filled),
			)
			*gaps = append(*gaps, roster.CoverageGap{
				Date:      fc.date,
				ShiftType: fc.req.ShiftType,
				Level:     lr.Level,
				Requested: lr.Count,
				Filled:    filled,
			})
		}
	}

	return selected
}

type rankedCandidate struct {
	employeeID string
	score      float64
}

func (e *Engine) rankCandidates(fc fillContext, level int, juniorSelected bool) []rankedCandidate {
	pool := fc.byLevel[level]
	ranked := make([]rankedCandidate, 0, len(pool))

	for _, emp := range pool {
		if fc.onLeave[emp.ID] {
			continue
		}
		ranked = append(ranked, rankedCandidate{
			employeeID: emp.ID,
			score: fc.scorer.score(candidate{
				employeeID:     emp.ID,
				skillLevel:     emp.SkillLevel,
				date:           fc.date,
				shift:          fc.req.ShiftType,
				isWeekend:      fc.isWeekend,
				workload:       fc.ledger.Get(emp.ID),
				assignedToday:  fc.assignedToday[emp.ID],
				lookback:       buildLookback(fc.history[emp.ID], fc.date),
				juniorSelected: juniorSelected,
			}),
		})
	}

	// Highest score first; ties fall back to employee id so runs with the
	// same seed stay byte-identical.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].employeeID < ranked[j].employeeID
	})

	return ranked
}

// bucketByLevel groups employees by skill level, ordered by id inside each
// bucket so scoring order is deterministic.
func bucketByLevel(employees []employee.Employee) map[int][]employee.Employee {
	byLevel := make(map[int][]employee.Employee)
	for _, emp := range employees {
		byLevel[emp.SkillLevel] = append(byLevel[emp.SkillLevel], emp)
	}
	for level := range byLevel {
		bucket := byLevel[level]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
	}
	return byLevel
}

// buildLookback fills the 7 days before date with the employee's committed
// shifts, "off" where nothing was assigned. Oldest day first.
func buildLookback(hist map[string]roster.ShiftType, date time.Time) [lookbackDays]roster.ShiftType {
	var window [lookbackDays]roster.ShiftType
	for i := 0; i < lookbackDays; i++ {
		day := date.AddDate(0, 0, i-lookbackDays)
		if sh, ok := hist[roster.DateKey(day)]; ok {
			window[i] = sh
		} else {
			window[i] = roster.ShiftOff
		}
	}
	return window
}
