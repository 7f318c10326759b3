// Package cdcl is the public facade over the CDCL engine: it wires the
// internal rule engine, search driver, heuristics and DIMACS parser behind
// the two solve entry points the rest of the system (CLI, benchmark
// harness) is meant to call, mirroring how the teacher keeps a thin public
// "sat" package in front of its internal/sat implementation.
package cdcl

// Options configures a solve. Field names track the option table in
// spec.md §6 one-to-one; Go naming conventions aside, HeuristicName is
// heuristic_name, TimeoutSec is timeout_sec, and so on.
type Options struct {
	// HeuristicName selects the decision strategy: "baseline"/"random" or
	// "vsids". An unrecognized name fails fast with UnknownHeuristic before
	// any solving starts.
	HeuristicName string

	// TimeoutSec is the wall-clock budget in seconds. Zero or negative
	// disables the deadline.
	TimeoutSec float64

	// Seed initializes the PRNG used by both heuristics.
	Seed int64

	// VSIDSBump, VSIDSDecayFactor and VSIDSDecayPeriod tune the VSIDS
	// heuristic; they are ignored by the random baseline.
	VSIDSBump        float64
	VSIDSDecayFactor float64
	VSIDSDecayPeriod int

	// Debug emits diagnostics to stderr. It never alters the outcome.
	Debug bool
}

// DefaultOptions mirrors the teacher's DefaultOptions/NewDefaultSolver
// convention (internal/sat/solver.go): callers copy this and override only
// the fields they care about.
var DefaultOptions = Options{
	HeuristicName:    "vsids",
	TimeoutSec:       -1,
	Seed:             1,
	VSIDSBump:        1.0,
	VSIDSDecayFactor: 0.95,
	VSIDSDecayPeriod: 50,
	Debug:            false,
}
