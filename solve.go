package gasat

import "context"

// Solve is a convenience entry point for one-shot use: given a problem as
// a slice of clauses (each a slice of signed literals, 0 disallowed), it
// runs a single GASAT search to completion with cfg and returns a
// satisfying assignment as signed literals (one per variable, assignment[i]
// positive if variable i+1 is true) if one was found.
//
// Solve is not appropriate for a caller that wants to observe progress or
// cancel mid-run; use Controller and Engine.Run directly for that.
func Solve(problem [][]int, cfg Config) (assignment []int, solved bool, err error) {
	clauses := make([]Clause, len(problem))
	nVars := 0
	for i, c := range problem {
		clauses[i] = Clause(c)
		for _, lit := range c {
			if v := abs(lit); v > nVars {
				nVars = v
			}
		}
	}
	formula := &Formula{Clauses: clauses, NVars: nVars}
	if err := formula.Validate(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	e := NewEngine(formula, cfg, nil, nil)
	result, ev, err := e.Run(context.Background())
	if err != nil {
		return nil, false, err
	}
	if !ev.Solved {
		return nil, false, nil
	}

	assignment = make([]int, nVars)
	for v := 1; v <= nVars; v++ {
		if result.Get(v) {
			assignment[v-1] = v
		} else {
			assignment[v-1] = -v
		}
	}
	return assignment, true, nil
}
