package gasat

import "sort"

// CreatePopulation fills the population with PopulationSize fresh,
// independently drawn, complete random assignments.
func (e *Engine) CreatePopulation() {
	e.population = make([]*Assignment, e.cfg.PopulationSize)
	for i := range e.population {
		e.population[i] = NewRandomAssignment(e.formula.NVars, e.rng)
	}
}

// sortedSubPopulation sorts the population by fitness ascending and
// returns the fittest SubPopulationSize individuals, which Select and
// Replace both use.
func (e *Engine) sortedSubPopulation() []*Assignment {
	sort.Slice(e.population, func(i, j int) bool {
		return e.evaluate(e.population[i]) < e.evaluate(e.population[j])
	})
	n := e.cfg.SubPopulationSize
	if n > len(e.population) {
		n = len(e.population)
	}
	e.subPop = e.population[:n]
	return e.subPop
}

// Select sorts the population by fitness ascending, slices the fittest
// SubPopulationSize individuals as the sub-population, and draws two
// distinct parents from it uniformly at random. Distinctness is by
// position, not value, so a sub-population of value-identical but
// distinct individuals still yields two parents.
func (e *Engine) Select() (x, y *Assignment) {
	sub := e.sortedSubPopulation()
	i := e.rng.Intn(len(sub))
	j := e.rng.Intn(len(sub))
	for j == i {
		j = e.rng.Intn(len(sub))
	}
	return sub[i], sub[j]
}

// Replace finds the weakest individual (highest fitness, first such
// found) in the current sub-population and, if child is strictly fitter,
// removes the weakest from the population and inserts child in its
// place. Otherwise child is discarded.
func (e *Engine) Replace(child *Assignment) {
	sub := e.subPop
	if len(sub) == 0 {
		sub = e.sortedSubPopulation()
	}
	weakest := sub[0]
	weakestFitness := e.evaluate(weakest)
	for _, ind := range sub[1:] {
		if f := e.evaluate(ind); f > weakestFitness {
			weakest = ind
			weakestFitness = f
		}
	}
	if e.evaluate(child) >= weakestFitness {
		return
	}
	for i, ind := range e.population {
		if ind == weakest {
			e.population[i] = child
			break
		}
	}
}

// IsSatisfied returns the first population member with fitness 0, or nil.
func (e *Engine) IsSatisfied() *Assignment {
	for _, ind := range e.population {
		if e.evaluate(ind) == 0 {
			return ind
		}
	}
	return nil
}

// Fittest returns the population member with the lowest fitness.
func (e *Engine) Fittest() *Assignment {
	best := e.population[0]
	bestFitness := e.evaluate(best)
	for _, ind := range e.population[1:] {
		if f := e.evaluate(ind); f < bestFitness {
			best = ind
			bestFitness = f
		}
	}
	return best
}
