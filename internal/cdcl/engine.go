package cdcl

// Engine is the CDCL rule engine: it holds the shared State plus a stack of
// implication-graph snapshots indexed by decision level and the in_conflict
// flag, and exposes the seven proof-system-style operations described in
// spec.md §4.1. Every operation reports whether it applied; composing them
// is the caller's (the search driver's) responsibility.
type Engine struct {
	state      *State
	graphs     *graphStack
	inConflict bool
}

func newEngine(state *State) *Engine {
	return &Engine{state: state, graphs: newGraphStack()}
}

// Propagate scans clause at clauseIndex and, if it is unit (exactly one
// literal whose complement is not in the model, and that literal is not
// itself already assigned), assigns it at the current decision level and
// records the antecedent edges. Returns whether it fired.
func (e *Engine) Propagate(clauseIndex int) bool {
	if e.inConflict {
		return false
	}
	clause := e.state.clauses[clauseIndex]
	m := e.state.model

	unassigned := clause.unassignedLiterals(m)
	if len(unassigned) != 1 {
		return false
	}
	l := unassigned[0]
	if m.contains(l) {
		return false
	}

	antecedents := make([]Literal, 0, len(clause.lits)-1)
	for _, other := range clause.lits {
		if other != l {
			antecedents = append(antecedents, other.Neg())
		}
	}

	m.assign(l)
	e.graphs.active().addNode(l, antecedents)
	return true
}

// Decide pushes a new decision level with literal l as its decision literal,
// provided neither l nor its complement is already assigned. Snapshots the
// active implication graph before recording l as a node with no antecedents.
func (e *Engine) Decide(l Literal) bool {
	m := e.state.model
	if m.contains(l) || m.contains(l.Neg()) {
		return false
	}
	m.pushDecision(l)
	e.graphs.pushSnapshot()
	e.graphs.active().addNode(l, nil)
	return true
}

// Conflict reports (and records) whether the clause at clauseIndex is fully
// falsified under the current model.
func (e *Engine) Conflict(clauseIndex int) bool {
	if e.inConflict {
		return false
	}
	clause := e.state.clauses[clauseIndex]
	if !clause.conflicting(e.state.model) {
		return false
	}

	e.inConflict = true
	active := e.graphs.active()
	active.conflictClause = append([]Literal(nil), clause.lits...)
	e.state.conflict = NewClause(active.conflictClause...)
	return true
}

// Explain resolves the working conflict clause back to its First UIP by
// repeatedly popping the last literal of the current decision level,
// removing its complement from the working clause (if present) and adding
// the complements of its antecedents. It stops once exactly one literal
// of the current level remains on the trail — the First UIP.
func (e *Engine) Explain() bool {
	if !e.inConflict {
		return false
	}
	m := e.state.model
	if m.currentLevelLen() == 0 {
		panic("cdcl: explain called with an empty current-level trail segment")
	}

	active := e.graphs.active()
	working := make(map[Literal]struct{}, len(active.conflictClause))
	for _, l := range active.conflictClause {
		working[l] = struct{}{}
	}

	for m.currentLevelLen() > 1 {
		l := m.popLast()
		falsified := l.Neg()
		// Unconditional per spec.md's explain(): delete(working, falsified)
		// is a no-op when falsified is absent, but every antecedent of l is
		// still inserted (matching original_source/core.py's explain(),
		// which carries no presence guard).
		delete(working, falsified)
		for _, a := range active.antecedentsOf(l) {
			working[a.Neg()] = struct{}{}
		}
	}

	lits := make([]Literal, 0, len(working))
	for l := range working {
		lits = append(lits, l)
	}
	active.conflictClause = lits
	e.state.conflict = NewClause(lits...)
	return true
}

// notUIPAndOthers splits the current conflict clause into ¬UIP (the
// negation of the trail's last literal) and the rest of the clause.
func (e *Engine) notUIPAndOthers() (notUIP Literal, others []Literal) {
	trail := e.state.model.assignedLiterals()
	uip := trail[len(trail)-1]
	notUIP = uip.Neg()
	for _, l := range e.state.conflict.Literals() {
		if l != notUIP {
			others = append(others, l)
		}
	}
	return notUIP, others
}

// AssertingLevel computes the level backjump() must be called with: the
// maximum decision level among the conflict clause's literals other than
// ¬UIP, or 0 if none remain (spec.md §4.1 Backjump, and §9's resolved open
// question: ¬UIP, never the bare UIP or the decision literal).
func (e *Engine) AssertingLevel() int {
	m := e.state.model
	_, others := e.notUIPAndOthers()

	level := 0
	for _, l := range others {
		if lvl := m.GetLevel(l); lvl > level {
			level = lvl
		}
	}
	return level
}

// Backjump truncates the model and graph stack back to targetLevel,
// asserting the negation of the First UIP as a forced literal there,
// provided targetLevel is at least the computed asserting level. See
// DESIGN.md for the resolved "¬UIP, not UIP" open question.
func (e *Engine) Backjump(targetLevel int) bool {
	if !e.inConflict || e.state.conflict == nil {
		return false
	}
	m := e.state.model

	notUIP, others := e.notUIPAndOthers()
	assertingLevel := e.AssertingLevel()

	if targetLevel < assertingLevel {
		return false
	}

	m.truncateToLevel(targetLevel)
	e.graphs.truncateTo(targetLevel + 1)

	antecedents := make([]Literal, len(others))
	for i, l := range others {
		antecedents[i] = l.Neg()
	}
	e.graphs.active().addNode(notUIP, antecedents)
	m.assign(notUIP)

	e.inConflict = false
	e.state.conflict = nil
	return true
}

// Fail reports (and records) root-level unsatisfiability: the engine is in
// conflict with no decisions left to undo.
func (e *Engine) Fail() bool {
	if e.inConflict && e.state.model.DecisionLevel() == 0 {
		e.state.unsat = true
		return true
	}
	return false
}

// Learn materializes the active graph's conflict clause (if any) into the
// clause database, returning it and whether it was newly added (it may
// already be present, in which case it is still returned for accounting).
func (e *Engine) Learn() (*Clause, bool) {
	active := e.graphs.active()
	if active.conflictClause == nil {
		return nil, false
	}
	c := NewClause(active.conflictClause...)
	if containsClause(e.state.clauses, c) {
		return c, false
	}
	e.state.clauses = append(e.state.clauses, c)
	return c, true
}
