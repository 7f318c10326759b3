package cdcl

import "errors"

// ErrEmptyClause is returned by Builder.AddClause when called with no
// literals: an empty clause is unsatisfiable by construction and almost
// always a caller mistake rather than an intentional trivial-UNSAT formula.
var ErrEmptyClause = errors.New("cdcl: clause must have at least one literal")

// Builder accumulates variables and clauses from an external source (the
// DIMACS parser, or a caller building a formula programmatically) and
// produces the State a Driver operates on. It plays the same role as the
// teacher's dimacsWritter / SATSolver builder interfaces
// (internal/dimacs/dimacs.go, parsers/parsers.go), generalized to opaque
// string variable names instead of a pre-sized, integer-indexed solver.
type Builder struct {
	vars    *varTable
	clauses []*Clause
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vars: newVarTable()}
}

// AddVariable interns name (if not already known) and returns its positive
// literal.
func (b *Builder) AddVariable(name string) Literal {
	return b.vars.Pos(name)
}

// Pos returns the positive literal for name, interning it if necessary.
func (b *Builder) Pos(name string) Literal {
	return b.vars.Pos(name)
}

// Neg returns the negative literal for name, interning it if necessary.
func (b *Builder) Neg(name string) Literal {
	return b.vars.Neg(name)
}

// AddClause appends a clause built from lits to the formula. It rejects a
// clause with no literals: an empty clause is unsatisfiable by construction
// and is almost always a caller mistake.
func (b *Builder) AddClause(lits ...Literal) error {
	if len(lits) == 0 {
		return ErrEmptyClause
	}
	b.clauses = append(b.clauses, NewClause(lits...))
	return nil
}

// NumVars returns the number of distinct variables interned so far.
func (b *Builder) NumVars() int {
	return b.vars.size()
}

// Clauses returns the clauses accumulated so far. Callers must not mutate
// the returned slice or its elements.
func (b *Builder) Clauses() []*Clause {
	return b.clauses
}

// Build returns the State ready for a Driver to search over.
func (b *Builder) Build() *State {
	return newState(b.vars, b.clauses)
}
