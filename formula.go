package gasat

// Formula is a finite ordered sequence of clauses in conjunctive normal
// form. Each clause is a non-empty sequence of non-zero signed integers
// (literals): a positive v refers to variable v, a negative -v to its
// negation. Variables are identified by |literal| and lie in [1, NVars].
type Formula struct {
	Clauses []Clause
	NVars   int
}

// Clause is a disjunction of literals, in the order they appeared in the
// input; order is preserved because it affects deterministic tie-breaks
// in the crossover operators and the tabu search.
type Clause []int

// NClauses returns the number of clauses in the formula.
func (f *Formula) NClauses() int { return len(f.Clauses) }

// Validate checks the formula invariant that every literal's variable
// lies within [1, NVars].
func (f *Formula) Validate() error {
	if f.NVars < 0 {
		return malformedFormulaf("formula has negative variable count %d", f.NVars)
	}
	for i, c := range f.Clauses {
		if len(c) == 0 {
			return malformedFormulaf("clause %d is empty", i)
		}
		for _, lit := range c {
			if lit == 0 {
				return malformedFormulaf("clause %d contains a zero literal", i)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > f.NVars {
				return malformedFormulaf("clause %d contains variable %d, but formula declares only %d variables", i, v, f.NVars)
			}
		}
	}
	return nil
}
