package cdcl

import "fmt"

// Heuristic is the decision-strategy capability set required by the search
// driver: pick the next decision literal, and react to the two events the
// rule engine can raise during search. There is no open extension
// requirement (spec.md §9 "tagged variants over dynamic dispatch"), so this
// interface has exactly these three methods and exactly two implementers.
type Heuristic interface {
	// PickDecision returns the next literal to branch on, or ok=false if
	// every known variable is already assigned in some polarity.
	PickDecision(m *Model) (lit Literal, ok bool)
	OnLearnedClause(c *Clause)
	OnConflict()
}

// UnknownHeuristic is returned by NewHeuristic when name does not match a
// known strategy. Solving never starts in that case (spec.md §7).
type UnknownHeuristic struct {
	Name string
}

func (e *UnknownHeuristic) Error() string {
	return fmt.Sprintf("cdcl: unknown heuristic %q (want \"baseline\", \"random\" or \"vsids\")", e.Name)
}

// HeuristicConfig carries the tunables for every concrete heuristic. Unused
// fields are ignored by strategies that don't need them.
type HeuristicConfig struct {
	Seed int64

	VSIDSBump        float64
	VSIDSDecayFactor float64
	VSIDSDecayPeriod int
}

// NewHeuristic constructs the named heuristic over the given number of
// interned variables (ids [0, numVars)).
func NewHeuristic(name string, numVars int, cfg HeuristicConfig) (Heuristic, error) {
	switch name {
	case "baseline", "random":
		return newRandomHeuristic(numVars, cfg.Seed), nil
	case "vsids":
		return newVSIDS(numVars, cfg), nil
	default:
		return nil, &UnknownHeuristic{Name: name}
	}
}
