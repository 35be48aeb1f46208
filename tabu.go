package gasat

import "math"

// tabuList is a bounded FIFO of recently flipped variables with O(1)
// membership testing via a parallel set, as the design notes recommend in
// place of the source's plain truncated list.
type tabuList struct {
	capacity int
	order    []int
	member   map[int]bool
}

func newTabuList(capacity int) *tabuList {
	return &tabuList{capacity: capacity, member: make(map[int]bool, capacity)}
}

func (t *tabuList) Contains(v int) bool { return t.member[v] }

func (t *tabuList) Len() int { return len(t.order) }

// Push appends v, evicting the oldest entry if capacity would be
// exceeded.
func (t *tabuList) Push(v int) {
	if t.member[v] {
		return
	}
	t.order = append(t.order, v)
	t.member[v] = true
	for len(t.order) > t.capacity {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.member, oldest)
	}
}

// ChoiceFunc selects the variable to flip next in the tabu search. It
// returns the chosen position p and the full set of positions it was
// drawn from ("alternatives"), which the loop ignores.
type ChoiceFunc func(e *Engine, tabu *tabuList, best, current *Assignment) (int, []int)

// StandardChoice considers every position; a position outside the tabu
// list is always eligible, and a tabu position is eligible too if
// flipping it would strictly improve on best. Among eligible positions it
// tracks the arg-max set by gain; if no position is yet eligible it falls
// through to treating every position seen so far as eligible, so the
// search is never stuck choosing from an empty set.
func StandardChoice(e *Engine, tabu *tabuList, best, current *Assignment) (int, []int) {
	var positions []int
	bestSigma := math.Inf(-1)
	for p := 1; p <= e.formula.NVars; p++ {
		eligible := !tabu.Contains(p)
		if !eligible {
			trial := current.Clone()
			trial.Flip(p)
			eligible = e.evaluate(trial) < e.evaluate(best)
		}
		if eligible {
			gain := float64(e.improvement(current, p))
			switch {
			case gain > bestSigma:
				bestSigma = gain
				positions = []int{p}
			case gain == bestSigma:
				positions = append(positions, p)
			}
		} else if bestSigma == math.Inf(-1) {
			positions = append(positions, p)
		}
	}
	return positions[e.rng.Intn(len(positions))], positions
}

// RVCFChoice (the Refined Variable Choice Function) first computes the
// arg-max set of raw improvement over every position, ignoring tabu
// status entirely, then breaks ties within that set by the secondary
// weight score.
func RVCFChoice(e *Engine, tabu *tabuList, best, current *Assignment) (int, []int) {
	var positions []int
	bestGain := math.Inf(-1)
	for p := 1; p <= e.formula.NVars; p++ {
		gain := float64(e.improvement(current, p))
		switch {
		case gain > bestGain:
			bestGain = gain
			positions = []int{p}
		case gain == bestGain:
			positions = append(positions, p)
		}
	}

	var maxWeights []int
	bestWeight := math.Inf(-1)
	for _, p := range positions {
		w := e.weight(current, p)
		switch {
		case w > bestWeight:
			bestWeight = w
			maxWeights = []int{p}
		case w == bestWeight:
			maxWeights = append(maxWeights, p)
		}
	}
	return maxWeights[e.rng.Intn(len(maxWeights))], maxWeights
}

// weight computes the RVCF secondary score for variable v in x: the
// average clause degree over clauses containing v or -v where x[v]=1,
// plus the same average where x[v]=0. Since x[v] has one fixed value,
// exactly one of the two averages is populated by any clause in
// practice; the definition is evaluated as written regardless.
func (e *Engine) weight(x *Assignment, v int) float64 {
	var onesSum, zerosSum, onesN, zerosN int
	for _, c := range e.formula.Clauses {
		if !containsVar(c, v) {
			continue
		}
		if x.Get(v) {
			onesSum += e.degree(x, c)
			onesN++
		} else {
			zerosSum += e.degree(x, c)
			zerosN++
		}
	}
	var ratioOnes, ratioZeros float64
	if onesN > 0 {
		ratioOnes = float64(onesSum) / float64(onesN)
	}
	if zerosN > 0 {
		ratioZeros = float64(zerosSum) / float64(zerosN)
	}
	return ratioOnes + ratioZeros
}

func containsVar(c Clause, v int) bool {
	for _, lit := range c {
		if abs(lit) == v {
			return true
		}
	}
	return false
}

// argmaxImprovementFirst returns the variable of the literal in c with
// the greatest improvement under current, restricted to literals whose
// variable is not in exclude (which may be nil). Ties go to the earliest
// literal, matching Python's max(): it only replaces the incumbent on a
// strictly greater value. Returns an EmptyChoiceSetError if every literal
// of c is excluded.
func (e *Engine) argmaxImprovementFirst(current *Assignment, c Clause, exclude map[int]int, clauseIndex int) (int, error) {
	best := 0
	bestGain := math.Inf(-1)
	found := false
	for _, lit := range c {
		v := abs(lit)
		if exclude != nil {
			if _, forbidden := exclude[v]; forbidden {
				continue
			}
		}
		gain := float64(e.improvement(current, v))
		if !found || gain > bestGain {
			found = true
			bestGain = gain
			best = v
		}
	}
	if !found {
		return 0, &EmptyChoiceSetError{ClauseIndex: clauseIndex}
	}
	return best, nil
}

// ageForbidden increments every entry of forbidden by one (one flip
// occurred), dropping entries that reach k: a variable flipped now cannot
// be re-flipped for the next k flips.
func ageForbidden(forbidden map[int]int, k int) {
	for v, age := range forbidden {
		age++
		if age >= k {
			delete(forbidden, v)
		} else {
			forbidden[v] = age
		}
	}
}

// TabuSearch performs the bounded bit-flipping descent of spec §4.4,
// returning the best assignment seen. seed is consumed by value: it is
// cloned before any mutation, so the caller's reference is left intact.
func (e *Engine) TabuSearch(seed *Assignment, choice ChoiceFunc) (*Assignment, error) {
	current := seed.Clone()
	best := seed.Clone()
	tabu := newTabuList(e.cfg.TabuListLength)

	var forbidden map[int]int
	if e.cfg.IsDiversification {
		forbidden = make(map[int]int)
	}

	for iter := 0; e.evaluate(best) > 0 && iter < e.cfg.MaxFlip; iter++ {
		p, _ := choice(e, tabu, best, current)
		if !tabu.Contains(p) {
			current.Flip(p)
			tabu.Push(p)
			if e.evaluate(current) < e.evaluate(best) {
				best = current.Clone()
			}
			if e.metrics != nil {
				e.metrics.tabuFlips.Inc()
			}
			if forbidden != nil {
				ageForbidden(forbidden, e.cfg.K)
			}
		}

		if e.cfg.IsDiversification {
			if err := e.diversify(current, forbidden); err != nil {
				return best, err
			}
		}
	}
	return best, nil
}

// diversify scans every clause for the false-count bookkeeping described
// in spec §4.4 step 3, triggering the forced-flip cascade for any clause
// that has been observed unsatisfied max_false times. The count is
// cumulative: it is not reset when the clause is satisfied, only after a
// forced flip for that clause.
func (e *Engine) diversify(current *Assignment, forbidden map[int]int) error {
	for i, c := range e.formula.Clauses {
		if e.sat(current, c) {
			continue
		}
		e.falseCounts[i]++
		if e.falseCounts[i] < e.cfg.MaxFalse {
			continue
		}

		v, err := e.argmaxImprovementFirst(current, c, nil, i)
		if err != nil {
			return err
		}
		if _, isForbidden := forbidden[v]; isForbidden {
			continue
		}

		before := make([]bool, e.formula.NClauses())
		for j, cj := range e.formula.Clauses {
			before[j] = e.sat(current, cj)
		}

		forbidden[v] = 0
		current.Flip(v)
		e.falseCounts[i] = 0
		if e.metrics != nil {
			e.metrics.tabuFlips.Inc()
		}
		ageForbidden(forbidden, e.cfg.K)

		var newlySatisfied []int
		for j, cj := range e.formula.Clauses {
			if !before[j] && e.sat(current, cj) {
				newlySatisfied = append(newlySatisfied, j)
			}
		}

		for rep := 0; rep < e.cfg.Rec; rep++ {
			for _, j := range newlySatisfied {
				pos, err := e.argmaxImprovementFirst(current, e.formula.Clauses[j], forbidden, j)
				if err != nil {
					return err
				}
				forbidden[pos] = 0
				current.Flip(pos)
				if e.metrics != nil {
					e.metrics.tabuFlips.Inc()
				}
				ageForbidden(forbidden, e.cfg.K)
			}
		}
	}
	return nil
}
