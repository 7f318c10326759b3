package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModelAssignAndContains(t *testing.T) {
	m := newModel()
	l := posLiteral(0)

	if m.contains(l) {
		t.Fatalf("contains() = true before assign")
	}
	m.assign(l)
	if !m.contains(l) {
		t.Errorf("contains() = false after assign")
	}
	if m.contains(l.Neg()) {
		t.Errorf("contains(Neg()) = true, want false: only l was assigned")
	}
}

func TestModelGetLevel(t *testing.T) {
	m := newModel()
	if got := m.GetLevel(posLiteral(0)); got != -1 {
		t.Errorf("GetLevel() on unassigned var = %d, want -1", got)
	}

	m.assign(posLiteral(0)) // level 0
	m.pushDecision(posLiteral(1)) // level 1
	m.pushDecision(negLiteral(2)) // level 2

	if got := m.GetLevel(posLiteral(0)); got != 0 {
		t.Errorf("GetLevel(var 0) = %d, want 0", got)
	}
	if got := m.GetLevel(posLiteral(1)); got != 1 {
		t.Errorf("GetLevel(var 1) = %d, want 1", got)
	}
	// GetLevel must find the level even when queried with the complement
	// of the assigned literal.
	if got := m.GetLevel(posLiteral(2)); got != 2 {
		t.Errorf("GetLevel(complement of var 2) = %d, want 2", got)
	}
}

func TestModelDecisionLevelAndTruncate(t *testing.T) {
	m := newModel()
	m.assign(posLiteral(0))
	m.pushDecision(posLiteral(1))
	m.assign(posLiteral(2))
	m.pushDecision(negLiteral(3))

	if got := m.DecisionLevel(); got != 2 {
		t.Fatalf("DecisionLevel() = %d, want 2", got)
	}

	m.truncateToLevel(1)

	if got := m.DecisionLevel(); got != 1 {
		t.Errorf("DecisionLevel() after truncate = %d, want 1", got)
	}
	if m.contains(negLiteral(3)) {
		t.Errorf("truncateToLevel did not remove literal assigned above target level")
	}
	if !m.contains(posLiteral(1)) {
		t.Errorf("truncateToLevel removed a literal at or below target level")
	}
}

func TestModelPopLast(t *testing.T) {
	m := newModel()
	m.assign(posLiteral(0))
	m.assign(posLiteral(1))

	got := m.popLast()
	if got != posLiteral(1) {
		t.Errorf("popLast() = %v, want %v", got, posLiteral(1))
	}
	if m.contains(posLiteral(1)) {
		t.Errorf("popLast() left the literal in the model")
	}
	if got := m.GetLevel(posLiteral(1)); got != -1 {
		t.Errorf("GetLevel() after popLast() = %d, want -1", got)
	}
}

func TestModelAssignedLiteralsOrder(t *testing.T) {
	m := newModel()
	m.assign(posLiteral(0))
	m.pushDecision(negLiteral(1))
	m.assign(posLiteral(2))

	want := []Literal{posLiteral(0), negLiteral(1), posLiteral(2)}
	if diff := cmp.Diff(want, m.assignedLiterals()); diff != "" {
		t.Errorf("assignedLiterals() mismatch (-want +got):\n%s", diff)
	}
}

func TestModelCurrentLevelLen(t *testing.T) {
	m := newModel()
	m.assign(posLiteral(0))
	if got := m.currentLevelLen(); got != 1 {
		t.Errorf("currentLevelLen() at level 0 = %d, want 1", got)
	}

	m.pushDecision(posLiteral(1))
	m.assign(posLiteral(2))
	if got := m.currentLevelLen(); got != 2 {
		t.Errorf("currentLevelLen() at level 1 = %d, want 2", got)
	}
}
