package gasat

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSatisfiable reports whether f is satisfiable according to gini, an
// independent CDCL solver used here purely as a ground-truth oracle; it
// is never part of the GASAT search itself (spec's Non-goals exclude
// CDCL/unit propagation from the core algorithm).
func giniSatisfiable(f *Formula) bool {
	g := gini.New()
	for _, c := range f.Clauses {
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(0)
	}
	return g.Solve() == 1
}

// plantedFormula builds a random 3-CNF formula over n variables that is
// satisfiable by construction: every clause contains at least one
// literal satisfied by the planted assignment.
func plantedFormula(rng *rand.Rand, n, m int) (*Formula, *Assignment) {
	planted := NewRandomAssignment(n, rng)
	clauses := make([]Clause, m)
	for i := range clauses {
		size := 3
		c := make(Clause, size)
		for j := 0; j < size; j++ {
			v := rng.Intn(n) + 1
			lit := v
			if !planted.Get(v) {
				lit = -v
			}
			if rng.Intn(4) == 0 {
				// Occasionally flip the polarity away from the planted
				// solution; another literal in the clause still keeps it
				// satisfied (ensured by the 0th literal below) unless we
				// are unlucky, so do this only for j>0.
				if j > 0 {
					lit = -lit
				}
			}
			c[j] = lit
		}
		// Guarantee literal 0 always matches the planted assignment, so
		// the clause is satisfied regardless of what the loop above did
		// to the others.
		v := abs(c[0])
		if planted.Get(v) {
			c[0] = v
		} else {
			c[0] = -v
		}
		clauses[i] = c
	}
	return &Formula{NVars: n, Clauses: clauses}, planted
}

func TestPlantedFormulasAreSatisfiableAccordingToOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for trial := 0; trial < 5; trial++ {
		f, planted := plantedFormula(rng, 20, 60)
		if got := Evaluate(f, planted); got != 0 {
			t.Fatalf("trial %d: planted assignment does not satisfy its own formula, evaluate = %d", trial, got)
		}
		if !giniSatisfiable(f) {
			t.Fatalf("trial %d: gini disagrees that a planted-satisfiable formula is satisfiable", trial)
		}
	}
}

func TestGASATSolutionAgreesWithOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f, _ := plantedFormula(rng, 15, 40)
	if !giniSatisfiable(f) {
		t.Fatal("oracle reports the planted instance unsatisfiable; test fixture is broken")
	}

	cfg := DefaultConfig()
	cfg.PopulationSize = 40
	cfg.SubPopulationSize = 10
	cfg.MaxGenerations = 200
	cfg.MaxFlip = 5000
	cfg.Seed = 55

	problem := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		problem[i] = []int(c)
	}
	assignment, solved, err := Solve(problem, cfg)
	if err != nil {
		t.Fatalf("Solve() = %v", err)
	}
	if !solved {
		t.Fatal("gasat did not find a satisfying assignment for a planted-satisfiable instance")
	}

	x := NewAssignment(f.NVars)
	for _, lit := range assignment {
		x.Set(abs(lit), lit > 0)
	}
	if got := Evaluate(f, x); got != 0 {
		t.Errorf("gasat's reported solution does not actually satisfy the formula: evaluate = %d", got)
	}
}

func TestUnsatisfiableFormulaIsRecognizedByOracle(t *testing.T) {
	// The pigeonhole-like minimal contradiction: x, -x.
	f := &Formula{NVars: 1, Clauses: []Clause{{1}, {-1}}}
	if giniSatisfiable(f) {
		t.Fatal("oracle reports a direct contradiction as satisfiable")
	}
}
