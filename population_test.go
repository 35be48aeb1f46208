package gasat

import "testing"

func smallEngine() *Engine {
	f := &Formula{NVars: 4, Clauses: []Clause{{1, 2}, {-1, 3}, {-2, -3}, {4}}}
	cfg := DefaultConfig()
	cfg.PopulationSize = 10
	cfg.SubPopulationSize = 4
	cfg.Seed = 5
	return newTestEngine(f, cfg)
}

func TestCreatePopulationSize(t *testing.T) {
	e := smallEngine()
	e.CreatePopulation()
	if len(e.population) != e.cfg.PopulationSize {
		t.Fatalf("len(population) = %d, want %d", len(e.population), e.cfg.PopulationSize)
	}
	for _, ind := range e.population {
		for v := 1; v <= e.formula.NVars; v++ {
			if !ind.IsDefined(v) {
				t.Errorf("population member has undefined variable %d", v)
			}
		}
	}
}

func TestSelectReturnsDistinctParents(t *testing.T) {
	e := smallEngine()
	e.CreatePopulation()
	x, y := e.Select()
	if x == y {
		t.Fatal("Select returned the same individual twice")
	}
	found := false
	for _, ind := range e.subPop {
		if ind == x {
			found = true
		}
	}
	if !found {
		t.Error("Select's first parent is not a member of the sub-population")
	}
}

func TestSortedSubPopulationIsFittestSlice(t *testing.T) {
	e := smallEngine()
	e.CreatePopulation()
	sub := e.sortedSubPopulation()
	if len(sub) != e.cfg.SubPopulationSize {
		t.Fatalf("len(sub) = %d, want %d", len(sub), e.cfg.SubPopulationSize)
	}
	for i := 1; i < len(e.population); i++ {
		if e.evaluate(e.population[i-1]) > e.evaluate(e.population[i]) {
			t.Fatal("population is not sorted by fitness ascending")
		}
	}
}

func TestReplaceKeepsFitterChild(t *testing.T) {
	e := smallEngine()
	e.CreatePopulation()
	e.sortedSubPopulation()

	worstFitness := e.evaluate(e.subPop[0])
	for _, ind := range e.subPop {
		if f := e.evaluate(ind); f > worstFitness {
			worstFitness = f
		}
	}

	child := valueAssignment(4, 1, 0, 1, 1) // satisfies every clause: evaluate = 0
	if e.evaluate(child) >= worstFitness {
		t.Fatalf("test fixture invariant broken: child fitness %d not below worst %d", e.evaluate(child), worstFitness)
	}

	e.Replace(child)

	present := false
	for _, ind := range e.population {
		if ind == child {
			present = true
		}
	}
	if !present {
		t.Error("Replace did not insert a strictly fitter child into the population")
	}
}

func TestReplaceDiscardsWeakerChild(t *testing.T) {
	e := smallEngine()
	e.CreatePopulation()
	before := append([]*Assignment(nil), e.population...)

	worst := e.Fittest() // the child below is the complement of the fittest individual
	child := NewAssignment(4)
	for v := 1; v <= 4; v++ {
		child.Set(v, !worst.Get(v))
	}
	// child is an arbitrary complement; only act on it if it is not fitter
	// than the weakest sub-population member, to keep this test's assertion valid
	// regardless of the randomized population contents.
	e.sortedSubPopulation()
	weakestFitness := e.evaluate(e.subPop[0])
	for _, ind := range e.subPop {
		if f := e.evaluate(ind); f > weakestFitness {
			weakestFitness = f
		}
	}
	if e.evaluate(child) < weakestFitness {
		t.Skip("randomly generated child happened to be fitter than the sub-population's weakest member")
	}

	e.Replace(child)
	for i, ind := range e.population {
		if ind != before[i] && ind == child {
			t.Error("Replace inserted a child that was not strictly fitter than the weakest sub-population member")
		}
	}
}

func TestIsSatisfiedAndFittest(t *testing.T) {
	e := smallEngine()
	e.population = []*Assignment{
		valueAssignment(4, 0, 0, 0, 0),
		valueAssignment(4, 1, 0, 1, 1), // satisfies every clause
		valueAssignment(4, 1, 1, 1, 1),
	}
	sat := e.IsSatisfied()
	if sat == nil || e.evaluate(sat) != 0 {
		t.Fatal("IsSatisfied did not find the satisfying member")
	}
	if fittest := e.Fittest(); e.evaluate(fittest) != 0 {
		t.Errorf("Fittest() has evaluate = %d, want 0", e.evaluate(fittest))
	}
}
