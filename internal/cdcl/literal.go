package cdcl

import "fmt"

// Literal is a signed reference to an interned variable. The low bit carries
// polarity: an even value is the positive literal of a variable, the next
// odd value is its negation. This mirrors the dense var*2/var*2+1 encoding
// used throughout the rest of the pack's SAT solvers, which keeps equality,
// negation and hashing all O(1) integer operations.
type Literal int

// Neg returns the complement of l.
func (l Literal) Neg() Literal {
	return l ^ 1
}

// IsPos reports whether l is the positive occurrence of its variable.
func (l Literal) IsPos() bool {
	return l&1 == 0
}

// VarID returns the dense id of the variable l refers to.
func (l Literal) VarID() int {
	return int(l) / 2
}

func posLiteral(id int) Literal { return Literal(id * 2) }
func negLiteral(id int) Literal { return Literal(id*2 + 1) }

// complementary reports whether a and b are the same variable with opposite
// polarity.
func complementary(a, b Literal) bool {
	return a == b.Neg()
}

func (l Literal) String() string {
	if l.IsPos() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}

// varTable interns opaque variable names into dense ids so that literals can
// be represented as small integers while the external API stays name-based.
type varTable struct {
	ids   map[string]int
	names []string
}

func newVarTable() *varTable {
	return &varTable{ids: map[string]int{}}
}

// intern returns the dense id for name, allocating a new one if name has not
// been seen before.
func (t *varTable) intern(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// lookup returns the id already assigned to name, if any.
func (t *varTable) lookup(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

func (t *varTable) name(id int) string {
	return t.names[id]
}

func (t *varTable) size() int {
	return len(t.names)
}

// Pos returns the positive literal for the named variable, interning it if
// necessary.
func (t *varTable) Pos(name string) Literal {
	return posLiteral(t.intern(name))
}

// Neg returns the negative literal for the named variable, interning it if
// necessary.
func (t *varTable) Neg(name string) Literal {
	return negLiteral(t.intern(name))
}
