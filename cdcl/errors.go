package cdcl

import core "github.com/tshepard/cogito/internal/cdcl"

// UnknownHeuristic is returned by SolveCNF/SolveDIMACS when Options.HeuristicName
// does not name a known strategy. The solve never starts in that case
// (spec.md §7 Error Handling Design).
type UnknownHeuristic = core.UnknownHeuristic
