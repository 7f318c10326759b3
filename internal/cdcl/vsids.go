package cdcl

import (
	"math/rand"

	"github.com/rhartert/yagh"
)

// vsidsHeuristic is the Variable State Independent Decaying Sum heuristic.
// It keeps a per-literal activity and, rather than scanning linearly for the
// maximum on every decision, keeps those activities mirrored in a max-heap
// (github.com/rhartert/yagh's IntMap, the same dependency and the same
// "store the negated score so Pop yields the max" trick the teacher's own
// VarOrder uses in internal/sat/ordering.go).
//
// Because assignment state changes (via backjump) without notifying the
// heuristic — the spec's capability set has no "on unassign" hook — every
// PickDecision call pops candidates off the heap into a scratch stash and
// puts all of them straight back before returning, rather than permanently
// discarding assigned variables the way the teacher's NextDecision does.
// This keeps the heap complete at all times while still giving an O(k log n)
// walk (for k = distance to the first viable tie group) instead of an O(n)
// scan.
type vsidsHeuristic struct {
	numVars int

	activities []float64 // indexed by Literal
	order      *yagh.IntMap[float64]

	bump        float64
	decayFactor float64
	decayPeriod int
	conflicts   int

	rng *rand.Rand
}

func newVSIDS(numVars int, cfg HeuristicConfig) *vsidsHeuristic {
	h := &vsidsHeuristic{
		numVars:     numVars,
		activities:  make([]float64, numVars*2),
		order:       yagh.New[float64](0),
		bump:        cfg.VSIDSBump,
		decayFactor: cfg.VSIDSDecayFactor,
		decayPeriod: cfg.VSIDSDecayPeriod,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
	}
	for v := 0; v < numVars; v++ {
		h.order.GrowBy(2)
		h.order.Put(int(posLiteral(v)), 0)
		h.order.Put(int(negLiteral(v)), 0)
	}
	return h
}

func (h *vsidsHeuristic) PickDecision(m *Model) (Literal, bool) {
	type stashed struct{ lit Literal }
	var stash []stashed

	var ties []Literal
	var maxActivity float64
	found := false

	for {
		elem, ok := h.order.Pop()
		if !ok {
			break
		}
		lit := Literal(elem.Elem)
		stash = append(stash, stashed{lit: lit})

		assignedVar := m.contains(lit) || m.contains(lit.Neg())

		if !found {
			if assignedVar {
				continue
			}
			found = true
			maxActivity = h.activities[lit]
			ties = append(ties, lit)
			continue
		}

		if h.activities[lit] != maxActivity {
			break
		}
		if !assignedVar {
			ties = append(ties, lit)
		}
	}

	for _, s := range stash {
		h.order.Put(int(s.lit), -h.activities[s.lit])
	}

	if !found {
		return 0, false
	}
	return ties[h.rng.Intn(len(ties))], true
}

func (h *vsidsHeuristic) OnLearnedClause(c *Clause) {
	for _, l := range c.Literals() {
		h.activities[l] += h.bump
		h.order.Put(int(l), -h.activities[l])
	}
}

func (h *vsidsHeuristic) OnConflict() {
	h.conflicts++
	if h.decayPeriod > 0 && h.conflicts%h.decayPeriod == 0 {
		for l := range h.activities {
			h.activities[l] *= h.decayFactor
			h.order.Put(l, -h.activities[l])
		}
	}
}
