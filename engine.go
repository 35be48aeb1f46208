package gasat

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Engine holds the formula, configuration, and mutable search state
// (population, tabu bookkeeping, RNG) for a single GASAT run. It is not
// safe for concurrent use; Controller serialises access to at most one
// active Engine.
type Engine struct {
	formula *Formula
	cfg     Config
	rng     *rand.Rand
	log     logrus.FieldLogger
	metrics *Metrics

	population  []*Assignment
	subPop      []*Assignment
	falseCounts []int

	observers   []Observer
	terminalObs []TerminalObserver

	generation int
}

// NewEngine constructs an Engine over formula governed by cfg. cfg must
// already have passed Validate. log and metrics may be nil, in which
// case a standard logger and a no-op metrics set are used.
func NewEngine(formula *Formula, cfg Config, log logrus.FieldLogger, metrics *Metrics) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Engine{
		formula:     formula,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		log:         log,
		metrics:     metrics,
		falseCounts: make([]int, formula.NClauses()),
	}
}

func (e *Engine) sat(x *Assignment, c Clause) bool          { return Sat(x, c) }
func (e *Engine) evaluate(x *Assignment) int                { return Evaluate(e.formula, x) }
func (e *Engine) improvement(x *Assignment, v int) int       { return Improvement(e.formula, x, v) }
func (e *Engine) degree(x *Assignment, c Clause) int         { return Degree(x, c) }
func (e *Engine) satCrossover(z *Assignment, c Clause) bool  { return SatCrossover(z, c) }

// AddObserver registers a callback fired synchronously on every generation
// transition. Panics raised by obs are recovered and logged; they never
// affect engine state.
func (e *Engine) AddObserver(obs Observer) {
	e.observers = append(e.observers, obs)
}

// AddTerminalObserver registers a callback fired once when the run ends.
func (e *Engine) AddTerminalObserver(obs TerminalObserver) {
	e.terminalObs = append(e.terminalObs, obs)
}
