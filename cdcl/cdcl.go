package cdcl

import (
	"log"
	"math"
	"os"
	"time"

	core "github.com/tshepard/cogito/internal/cdcl"
	"github.com/tshepard/cogito/internal/dimacs"
)

// Literal and Clause are re-exported so callers can build formulas
// programmatically (spec.md §4.5's supplementing clause builder) without
// reaching into the internal package.
type (
	Literal = core.Literal
	Clause  = core.Clause
	Builder = core.Builder
)

// NewBuilder returns an empty formula builder. Variables are opaque,
// non-empty strings interned on first use; AddClause collects literals
// built from Builder.Pos/Neg (or the DIMACS parser) into the formula that
// SolveCNF will search over.
func NewBuilder() *Builder {
	return core.NewBuilder()
}

// SolveCNF solves the formula accumulated in f according to opts. f is not
// modified: the engine appends learned clauses to its own copy of the clause
// database, not to f.
func SolveCNF(f *Builder, opts Options) (Result, error) {
	return solve(f.Build(), f.NumVars(), opts)
}

// SolveDIMACS parses path as DIMACS CNF and solves it according to opts.
func SolveDIMACS(path string, opts Options) (Result, error) {
	b, err := dimacs.ParseFile(path)
	if err != nil {
		return Result{}, err
	}
	return solve(b.Build(), b.NumVars(), opts)
}

func solve(state *core.State, numVars int, opts Options) (Result, error) {
	heuristic, err := core.NewHeuristic(opts.HeuristicName, numVars, core.HeuristicConfig{
		Seed:             opts.Seed,
		VSIDSBump:        opts.VSIDSBump,
		VSIDSDecayFactor: opts.VSIDSDecayFactor,
		VSIDSDecayPeriod: opts.VSIDSDecayPeriod,
	})
	if err != nil {
		return Result{}, err
	}

	var timeout time.Duration
	if opts.TimeoutSec > 0 {
		timeout = time.Duration(opts.TimeoutSec * float64(time.Second))
	}

	logger := log.New(os.Stderr, "cogito: ", log.LstdFlags)
	driver := core.NewDriver(state, heuristic, timeout, opts.Debug, logger)

	start := time.Now()
	status := driver.Run()
	runtime := time.Since(start).Seconds()

	stats := driver.Stats()
	return Result{
		Status:     Status(status),
		RuntimeSec: round6(runtime),
		Stats: Stats{
			Decisions:      stats.Decisions,
			Conflicts:      stats.Conflicts,
			LearnedClauses: stats.LearnedClauses,
			Propagations:   stats.Propagations,
		},
		Assignment: state.Assignment(),
	}, nil
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
