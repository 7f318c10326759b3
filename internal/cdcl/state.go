package cdcl

// State bundles everything a solve owns: the clause database, the model, an
// optional current conflict clause, and sticky sat/unsat flags. Clauses may
// be appended (learned) but are never removed — the database grows
// monotonically for the lifetime of a solve (spec.md §3 Lifecycle).
type State struct {
	vars    *varTable
	clauses []*Clause
	model   *Model

	// conflict is a published copy of the active graph's conflictClause,
	// set by conflict() and cleared by backjump().
	conflict *Clause

	sat   bool
	unsat bool
}

func newState(vars *varTable, clauses []*Clause) *State {
	return &State{
		vars:    vars,
		clauses: append([]*Clause(nil), clauses...),
		model:   newModel(),
	}
}

// allSatisfied reports whether every clause in the database is satisfied
// under the current model.
func (st *State) allSatisfied() bool {
	for _, c := range st.clauses {
		if !c.satisfied(st.model) {
			return false
		}
	}
	return true
}

// Assignment extracts a variable-name -> bool map from the current model.
// Variables never assigned are absent. Populated for SAT, best-effort
// otherwise (spec.md §6 SolveResult.assignment).
func (st *State) Assignment() map[string]bool {
	out := map[string]bool{}
	for _, l := range st.model.assignment {
		out[st.vars.name(l.VarID())] = l.IsPos()
	}
	return out
}

// NumVars returns the number of interned variables.
func (st *State) NumVars() int {
	return st.vars.size()
}
