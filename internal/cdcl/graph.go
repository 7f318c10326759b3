package cdcl

// graph is the implication DAG active at one decision level: edges[target]
// holds the antecedents that forced target, and conflictClause holds the
// current working resolvent during conflict analysis. The engine keeps a
// stack of these, one per decision level, per spec.md §3/§9 — snapshotting
// the whole edge map on every decide() so that backjump can restore exactly
// the graph that was active when the level above was entered.
type graph struct {
	edges          map[Literal][]Literal
	conflictClause []Literal
}

func newGraph() *graph {
	return &graph{edges: map[Literal][]Literal{}}
}

// clone deep-copies the graph so that mutations to the copy never alias the
// original (spec.md §5 "Graph snapshots use deep copies").
func (g *graph) clone() *graph {
	edges := make(map[Literal][]Literal, len(g.edges))
	for k, v := range g.edges {
		cp := make([]Literal, len(v))
		copy(cp, v)
		edges[k] = cp
	}
	var conflict []Literal
	if g.conflictClause != nil {
		conflict = make([]Literal, len(g.conflictClause))
		copy(conflict, g.conflictClause)
	}
	return &graph{edges: edges, conflictClause: conflict}
}

// addNode registers target as present in the graph with the given
// antecedents (possibly empty, for a decision literal).
func (g *graph) addNode(target Literal, antecedents []Literal) {
	cp := make([]Literal, len(antecedents))
	copy(cp, antecedents)
	g.edges[target] = cp
}

// antecedentsOf returns the antecedents recorded for l, or nil if l has none
// (e.g. it was a decision literal).
func (g *graph) antecedentsOf(l Literal) []Literal {
	return g.edges[l]
}

// graphStack is the per-decision-level stack of graph snapshots; its top is
// the active graph.
type graphStack struct {
	levels []*graph
}

func newGraphStack() *graphStack {
	return &graphStack{levels: []*graph{newGraph()}}
}

func (s *graphStack) active() *graph {
	return s.levels[len(s.levels)-1]
}

// pushSnapshot duplicates the active graph and pushes the copy, called on
// every decide().
func (s *graphStack) pushSnapshot() {
	s.levels = append(s.levels, s.active().clone())
}

// truncateTo keeps exactly n levels (indices [0, n)) on the stack.
func (s *graphStack) truncateTo(n int) {
	s.levels = s.levels[:n]
}

func (s *graphStack) len() int {
	return len(s.levels)
}
