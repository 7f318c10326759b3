package cdcl

// Model is the trail: a stack-discipline total order of assigned literals,
// partitioned into contiguous decision levels. It follows the same shape as
// rhartert/yass's trail/trailLim/level fields in internal/sat/solver.go, but
// keyed by the literal itself (rather than by a pre-allocated dense
// assigns/level array) since variables are interned lazily here.
type Model struct {
	assignment []Literal

	// decisions[k] is the index into assignment where decision level k+1
	// begins.
	decisions []int

	// levels maps a variable id to the decision level at which it (or its
	// complement) was assigned. A variable absent from the map is
	// unassigned.
	levels map[int]int

	// present maps a literal to its position in assignment, giving an O(1)
	// membership test in place of the spec's conceptual O(trail) scan (see
	// spec.md §9 "Model membership test").
	present map[Literal]int
}

func newModel() *Model {
	return &Model{
		levels:  map[int]int{},
		present: map[Literal]int{},
	}
}

// DecisionLevel returns the model's current decision level.
func (m *Model) DecisionLevel() int {
	return len(m.decisions)
}

// contains reports whether literal l is currently assigned (true under the
// model).
func (m *Model) contains(l Literal) bool {
	_, ok := m.present[l]
	return ok
}

// GetLevel implements the spec's model.get_level contract: the level of l if
// assigned, the level of its complement if only that is assigned, or -1 if
// neither is assigned.
func (m *Model) GetLevel(l Literal) int {
	if lvl, ok := m.levels[l.VarID()]; ok {
		return lvl
	}
	return -1
}

// assign pushes literal l onto the trail at the current decision level. The
// caller is responsible for ensuring neither l nor its complement is already
// assigned.
func (m *Model) assign(l Literal) {
	m.present[l] = len(m.assignment)
	m.assignment = append(m.assignment, l)
	m.levels[l.VarID()] = m.DecisionLevel()
}

// pushDecision begins a new decision level with literal l as its decision
// literal.
func (m *Model) pushDecision(l Literal) {
	m.decisions = append(m.decisions, len(m.assignment))
	m.assign(l)
}

// currentLevelStart returns the trail index where the current decision
// level's segment begins (0 for level 0).
func (m *Model) currentLevelStart() int {
	if len(m.decisions) == 0 {
		return 0
	}
	return m.decisions[len(m.decisions)-1]
}

// currentLevelLen returns the number of literals assigned at the current
// decision level.
func (m *Model) currentLevelLen() int {
	return len(m.assignment) - m.currentLevelStart()
}

// popLast removes and returns the last assigned literal, regardless of
// level. It is the primitive explain() uses to walk the current-level
// segment backwards.
func (m *Model) popLast() Literal {
	l := m.assignment[len(m.assignment)-1]
	m.assignment = m.assignment[:len(m.assignment)-1]
	delete(m.present, l)
	delete(m.levels, l.VarID())
	return l
}

// truncateToLevel removes every literal assigned above target level, and
// drops the decision-level markers above it. It leaves the model with
// DecisionLevel() == target.
func (m *Model) truncateToLevel(target int) {
	for m.DecisionLevel() > target {
		start := m.decisions[len(m.decisions)-1]
		for len(m.assignment) > start {
			m.popLast()
		}
		m.decisions = m.decisions[:len(m.decisions)-1]
	}
}

// assignedLiterals returns a copy of the full assignment, in trail order.
func (m *Model) assignedLiterals() []Literal {
	out := make([]Literal, len(m.assignment))
	copy(out, m.assignment)
	return out
}
