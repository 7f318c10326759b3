package cdcl

import "testing"

func TestGraphCloneDoesNotAlias(t *testing.T) {
	g := newGraph()
	g.addNode(posLiteral(0), []Literal{negLiteral(1)})

	clone := g.clone()
	clone.addNode(posLiteral(2), []Literal{negLiteral(3)})

	if _, ok := g.edges[posLiteral(2)]; ok {
		t.Errorf("mutating the clone mutated the original graph")
	}
	if len(clone.antecedentsOf(posLiteral(0))) != 1 {
		t.Errorf("clone lost the original graph's edges")
	}
}

func TestGraphStackSnapshotAndTruncate(t *testing.T) {
	s := newGraphStack()
	if got := s.len(); got != 1 {
		t.Fatalf("newGraphStack() len = %d, want 1", got)
	}

	s.active().addNode(posLiteral(0), nil)
	s.pushSnapshot()
	s.active().addNode(posLiteral(1), nil)
	s.pushSnapshot()
	s.active().addNode(posLiteral(2), nil)

	if got := s.len(); got != 3 {
		t.Fatalf("len() after two snapshots = %d, want 3", got)
	}

	s.truncateTo(2)
	if got := s.len(); got != 2 {
		t.Fatalf("len() after truncateTo(2) = %d, want 2", got)
	}
	if _, ok := s.active().edges[posLiteral(2)]; ok {
		t.Errorf("truncateTo did not drop the level added after the kept snapshot")
	}
	if _, ok := s.active().edges[posLiteral(0)]; !ok {
		t.Errorf("truncateTo dropped a node that predated the kept snapshot")
	}
}
