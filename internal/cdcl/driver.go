package cdcl

import (
	"log"
	"time"
)

// Driver is the search driver: the outer loop that orchestrates the rule
// engine to termination, tracking conflict counts and collecting
// statistics. It mirrors the shape of the teacher's Solver.Search/Solve
// split in internal/sat/solver.go, but the engine it drives exposes the
// spec's seven explicit rule operations instead of a fused
// propagate-and-watch step.
type Driver struct {
	engine    *Engine
	heuristic Heuristic
	stats     SolveStats

	hasDeadline bool
	deadline    time.Time

	debug  bool
	logger *log.Logger
}

// NewDriver builds a driver over state, using heuristic for decisions. A
// non-positive timeout disables the wall-clock deadline.
func NewDriver(state *State, heuristic Heuristic, timeout time.Duration, debug bool, logger *log.Logger) *Driver {
	d := &Driver{
		engine:    newEngine(state),
		heuristic: heuristic,
		debug:     debug,
		logger:    logger,
	}
	if timeout > 0 {
		d.hasDeadline = true
		d.deadline = time.Now().Add(timeout)
	}
	return d
}

func (d *Driver) logf(format string, args ...any) {
	if d.debug && d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

// Run executes the main search loop to a terminal status.
func (d *Driver) Run() Status {
	for {
		if d.hasDeadline && time.Now().After(d.deadline) {
			d.logf("deadline exceeded after %d conflicts", d.stats.Conflicts)
			return StatusTimeout
		}

		if d.propagateToFixpoint() {
			if d.engine.Fail() {
				d.logf("root-level conflict, UNSAT")
				return StatusUNSAT
			}

			d.engine.Explain()

			if learned, added := d.engine.Learn(); added {
				d.stats.LearnedClauses++
				d.heuristic.OnLearnedClause(learned)
			}
			d.heuristic.OnConflict()

			target := d.engine.AssertingLevel()
			if !d.engine.Backjump(target) {
				panic("cdcl: backjump rejected the computed asserting level")
			}
			continue
		}

		if d.engine.state.allSatisfied() {
			d.engine.state.sat = true
			d.logf("all clauses satisfied, SAT")
			return StatusSAT
		}

		lit, ok := d.heuristic.PickDecision(d.engine.state.model)
		if !ok {
			// No free variable, yet the formula was not reported satisfied.
			// Should not occur under sound propagation; safe fallback.
			d.logf("no decision available and formula not satisfied, reporting UNSAT")
			return StatusUNSAT
		}
		if d.engine.Decide(lit) {
			d.stats.Decisions++
			d.logf("decide %s at level %d", lit, d.engine.state.model.DecisionLevel())
		}
	}
}

// propagateToFixpoint repeatedly sweeps the clause database, trying conflict
// detection before propagation for each clause, until either a full sweep
// makes no progress (returning false) or a conflict fires (returning true).
// Trying conflict first for a given clause, every sweep, is the resolution
// of spec.md §9's second open question: a falsified clause is reported
// before any later clause in the same pass gets to propagate from it.
func (d *Driver) propagateToFixpoint() bool {
	for {
		dirty := false
		for i := range d.engine.state.clauses {
			if d.engine.Conflict(i) {
				d.stats.Conflicts++
				return true
			}
			if d.engine.Propagate(i) {
				d.stats.Propagations++
				dirty = true
			}
		}
		if !dirty {
			return false
		}
	}
}

// Stats returns the statistics accumulated so far.
func (d *Driver) Stats() SolveStats {
	return d.stats
}
