package cdcl

import "testing"

func TestVSIDSPicksHighestActivityFreeLiteral(t *testing.T) {
	h := newVSIDS(3, HeuristicConfig{Seed: 1, VSIDSBump: 1, VSIDSDecayFactor: 0.5, VSIDSDecayPeriod: 0})
	m := newModel()

	h.OnLearnedClause(NewClause(posLiteral(2)))
	h.OnLearnedClause(NewClause(posLiteral(2)))

	lit, ok := h.PickDecision(m)
	if !ok {
		t.Fatalf("PickDecision() = false, want true")
	}
	if lit.VarID() != 2 {
		t.Errorf("PickDecision() = %v, want a literal of variable 2 (highest activity)", lit)
	}
}

func TestVSIDSSkipsAssignedVariables(t *testing.T) {
	h := newVSIDS(2, HeuristicConfig{Seed: 1, VSIDSBump: 1, VSIDSDecayFactor: 1, VSIDSDecayPeriod: 0})
	m := newModel()

	h.OnLearnedClause(NewClause(posLiteral(0)))
	m.assign(posLiteral(0))

	lit, ok := h.PickDecision(m)
	if !ok {
		t.Fatalf("PickDecision() = false, want true: variable 1 is still free")
	}
	if lit.VarID() != 1 {
		t.Errorf("PickDecision() = %v, want a literal of variable 1", lit)
	}
}

func TestVSIDSHeapStaysCompleteAcrossCalls(t *testing.T) {
	h := newVSIDS(4, HeuristicConfig{Seed: 1, VSIDSBump: 1, VSIDSDecayFactor: 1, VSIDSDecayPeriod: 0})
	m := newModel()

	for i := 0; i < 4; i++ {
		lit, ok := h.PickDecision(m)
		if !ok {
			t.Fatalf("PickDecision() call %d = false, want true", i)
		}
		m.assign(lit)
	}
	if _, ok := h.PickDecision(m); ok {
		t.Errorf("PickDecision() = true once every variable is assigned, want false")
	}
}

func TestVSIDSDecayAppliesPeriodically(t *testing.T) {
	h := newVSIDS(1, HeuristicConfig{Seed: 1, VSIDSBump: 10, VSIDSDecayFactor: 0.1, VSIDSDecayPeriod: 2})

	h.OnLearnedClause(NewClause(posLiteral(0)))
	before := h.activities[posLiteral(0)]

	h.OnConflict()
	if h.activities[posLiteral(0)] != before {
		t.Fatalf("activity decayed before reaching the configured period")
	}

	h.OnConflict()
	if got := h.activities[posLiteral(0)]; got != before*0.1 {
		t.Errorf("activity after period = %v, want %v", got, before*0.1)
	}
}
