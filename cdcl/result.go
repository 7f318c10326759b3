package cdcl

import core "github.com/tshepard/cogito/internal/cdcl"

// Status is the terminal outcome of a solve.
type Status int

const (
	StatusSAT Status = iota
	StatusUNSAT
	StatusTimeout
)

func (s Status) String() string {
	return core.Status(s).String()
}

// Stats accumulates the counters the search driver tracked over the solve
// (spec.md §4.2 SolveStats).
type Stats struct {
	Decisions      int
	Conflicts      int
	LearnedClauses int
	Propagations   int
}

// Result is the outcome of SolveCNF/SolveDIMACS (spec.md §6 SolveResult).
type Result struct {
	Status     Status
	RuntimeSec float64
	Stats      Stats
	// Assignment maps variable name to truth value for every variable the
	// model assigned (whatever the model held when the solve stopped).
	// Variables left unassigned, even in a SAT result, are absent.
	Assignment map[string]bool
}
