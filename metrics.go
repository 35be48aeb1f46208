package gasat

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the small set of prometheus instruments the driver and tabu
// search update. A nil *Metrics argument to NewEngine is replaced by a
// Metrics built against a fresh, unregistered registry, so callers that
// don't care about metrics never need to special-case it.
type Metrics struct {
	generations *prometheus.CounterVec
	bestFitness prometheus.Gauge
	tabuFlips   prometheus.Counter
}

// NewMetrics registers the driver's instruments against reg. If reg is
// nil, a private registry is used instead, matching the pattern
// operator-framework's controllers use when a caller wants metrics
// without wiring them into the process-wide default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gasat_generations_total",
			Help: "Number of GASAT generations completed, by outcome.",
		}, []string{"outcome"}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gasat_best_fitness",
			Help: "Number of unsatisfied clauses in the best assignment seen so far.",
		}),
		tabuFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gasat_tabu_flips_total",
			Help: "Number of variable flips performed by the tabu search, across all descents.",
		}),
	}
	reg.MustRegister(m.generations, m.bestFitness, m.tabuFlips)
	return m
}

func (m *Metrics) observeGeneration(solved bool) {
	outcome := "ongoing"
	if solved {
		outcome = "solved"
	}
	m.generations.WithLabelValues(outcome).Inc()
}
