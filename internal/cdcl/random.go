package cdcl

import "math/rand"

// randomHeuristic is the baseline decision strategy: among the variables not
// yet assigned in either polarity, pick one uniformly at random and a
// polarity uniformly at random, using a seeded PRNG for reproducibility.
type randomHeuristic struct {
	numVars int
	rng     *rand.Rand
}

func newRandomHeuristic(numVars int, seed int64) *randomHeuristic {
	return &randomHeuristic{
		numVars: numVars,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (h *randomHeuristic) PickDecision(m *Model) (Literal, bool) {
	free := make([]int, 0, h.numVars)
	for v := 0; v < h.numVars; v++ {
		if m.contains(posLiteral(v)) || m.contains(negLiteral(v)) {
			continue
		}
		free = append(free, v)
	}
	if len(free) == 0 {
		return 0, false
	}

	v := free[h.rng.Intn(len(free))]
	if h.rng.Intn(2) == 0 {
		return posLiteral(v), true
	}
	return negLiteral(v), true
}

func (h *randomHeuristic) OnLearnedClause(c *Clause) {}

func (h *randomHeuristic) OnConflict() {}
