// Package gasat implements a stochastic SAT solver combining a genetic
// algorithm with tabu-list-guided local search (a "GASAT"-style hybrid).
//
// A population of candidate truth assignments evolves under three
// specialised crossover operators; every offspring is refined by a
// tabu search before it competes for a place back in the population.
// The package is not a complete DPLL/CDCL solver: it has no unit
// propagation, no learned clauses, and no proof of unsatisfiability.
// When no satisfying assignment is found within the generation budget,
// the fittest assignment encountered is returned instead.
package gasat
