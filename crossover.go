package gasat

// CrossoverOperator identifies one of the three recombination rules a
// Config selects between.
type CrossoverOperator int

const (
	// CorrectiveClause is the CC operator.
	CorrectiveClause CrossoverOperator = iota
	// CorrectiveClauseTruthMaintenance is the CCTM operator.
	CorrectiveClauseTruthMaintenance
	// FleurentFerland is the FF operator.
	FleurentFerland
)

func (op CrossoverOperator) valid() bool {
	return op == CorrectiveClause || op == CorrectiveClauseTruthMaintenance || op == FleurentFerland
}

// crossover dispatches to the configured operator.
func (e *Engine) crossover(x, y *Assignment) *Assignment {
	switch e.cfg.CrossoverOperator {
	case CorrectiveClauseTruthMaintenance:
		return e.cctm(x, y)
	case FleurentFerland:
		return e.fleurentFerland(x, y)
	default:
		return e.correctiveClause(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (e *Engine) allocate(z, x, y *Assignment) {
	preferX := e.evaluate(x) <= e.evaluate(y)
	z.Allocate(x, y, preferX)
}

// correctiveClause implements the CC operator (spec §4.3). For every
// clause unsatisfied by both parents and not yet satisfied by the
// in-progress child, it picks the literal whose combined parent
// improvement is greatest (later literals win ties) and, if that gain is
// strictly positive, writes x's bit for that variable into z and then
// flips it.
func (e *Engine) correctiveClause(x, y *Assignment) *Assignment {
	z := NewAssignment(e.formula.NVars)
	for _, c := range e.formula.Clauses {
		if e.sat(x, c) || e.sat(y, c) || SatCrossover(z, c) {
			continue
		}
		bestPos := 0
		bestGain := 0
		for _, lit := range c {
			v := abs(lit)
			gain := e.improvement(x, v) + e.improvement(y, v)
			if gain >= bestGain {
				bestGain = gain
				bestPos = v
			}
		}
		if bestGain > 0 {
			z.Set(bestPos, x.Get(bestPos))
			z.SetDefined(bestPos)
			z.Flip(bestPos)
		}
	}
	e.allocate(z, x, y)
	return z
}

// cctm implements the CCTM operator (spec §4.3): the CC pass above,
// followed by a truth-maintenance pass over clauses both parents satisfy
// but the child does not yet. There, variables set to 1 by either parent
// are candidates; the candidate with the minimum combined improvement
// (earlier literals win ties) whose tentative assignment would satisfy
// the clause is permanently set to 1 in z.
func (e *Engine) cctm(x, y *Assignment) *Assignment {
	z := NewAssignment(e.formula.NVars)
	for _, c := range e.formula.Clauses {
		if e.sat(x, c) || e.sat(y, c) || SatCrossover(z, c) {
			continue
		}
		bestPos := 0
		bestGain := 0
		for _, lit := range c {
			v := abs(lit)
			gain := e.improvement(x, v) + e.improvement(y, v)
			if gain >= bestGain {
				bestGain = gain
				bestPos = v
			}
		}
		if bestGain > 0 {
			z.Set(bestPos, x.Get(bestPos))
			z.SetDefined(bestPos)
			z.Flip(bestPos)
		}
	}

	for _, c := range e.formula.Clauses {
		if !(e.sat(x, c) && e.sat(y, c)) || SatCrossover(z, c) {
			continue
		}
		bestPos := -1
		minGain := e.formula.NClauses() + 1
		for _, lit := range c {
			v := abs(lit)
			if !(x.Get(v) || y.Get(v)) {
				continue
			}
			gain := e.improvement(x, v) + e.improvement(y, v)
			trial := z.Clone()
			trial.Set(v, true)
			trial.SetDefined(v)
			if (bestPos == -1 || gain < minGain) && SatCrossover(trial, c) {
				minGain = gain
				bestPos = v
			}
		}
		if bestPos != -1 {
			z.Set(bestPos, true)
			z.SetDefined(bestPos)
		}
	}
	e.allocate(z, x, y)
	return z
}

// fleurentFerland implements the FF operator (spec §4.3, overriding the
// indexing bug present in the original source): for each clause satisfied
// by exactly one parent, every literal's variable is copied wholesale
// from that parent.
func (e *Engine) fleurentFerland(x, y *Assignment) *Assignment {
	z := NewAssignment(e.formula.NVars)
	for _, c := range e.formula.Clauses {
		switch {
		case e.sat(x, c) && !e.sat(y, c):
			for _, lit := range c {
				v := abs(lit)
				z.Set(v, x.Get(v))
				z.SetDefined(v)
			}
		case !e.sat(x, c) && e.sat(y, c):
			for _, lit := range c {
				v := abs(lit)
				z.Set(v, y.Get(v))
				z.SetDefined(v)
			}
		}
	}
	e.allocate(z, x, y)
	return z
}
