package cdcl

// Clause is an unordered set of literals. Duplicate literals collapse on
// construction, matching the spec's set semantics (compare with
// rhartert/yass's own dedup-on-build in sat/clauses.go).
type Clause struct {
	lits []Literal
}

// NewClause builds a Clause from lits, dropping duplicates. Order of the
// surviving literals is insertion order minus the dropped duplicates; it is
// never semantically significant.
func NewClause(lits ...Literal) *Clause {
	seen := make(map[Literal]struct{}, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return &Clause{lits: out}
}

// Literals returns the clause's literals. Callers must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal {
	return c.lits
}

func (c *Clause) Len() int {
	return len(c.lits)
}

// equalSet reports whether two clauses contain exactly the same set of
// literals, as required by the spec's clause-equality contract.
func (c *Clause) equalSet(other *Clause) bool {
	if len(c.lits) != len(other.lits) {
		return false
	}
	set := make(map[Literal]struct{}, len(c.lits))
	for _, l := range c.lits {
		set[l] = struct{}{}
	}
	for _, l := range other.lits {
		if _, ok := set[l]; !ok {
			return false
		}
	}
	return true
}

// containsClause reports whether db already has a clause equal (as a set) to
// c.
func containsClause(db []*Clause, c *Clause) bool {
	for _, existing := range db {
		if existing.equalSet(c) {
			return true
		}
	}
	return false
}

// satisfied reports whether any of the clause's literals is assigned true in
// m.
func (c *Clause) satisfied(m *Model) bool {
	for _, l := range c.lits {
		if m.contains(l) {
			return true
		}
	}
	return false
}

// conflicting reports whether every literal of the clause has its complement
// assigned in m.
func (c *Clause) conflicting(m *Model) bool {
	for _, l := range c.lits {
		if !m.contains(l.Neg()) {
			return false
		}
	}
	return true
}

// unassignedLiterals returns the literals of c whose complement is not in m,
// i.e. the literals that are not yet falsified.
func (c *Clause) unassignedLiterals(m *Model) []Literal {
	var out []Literal
	for _, l := range c.lits {
		if !m.contains(l.Neg()) {
			out = append(out, l)
		}
	}
	return out
}
