package gasat

// Sat treats x as complete: clause c is satisfied iff some positive
// literal v has x.Get(v) == true, or some negative literal -v has
// x.Get(v) == false.
func Sat(x *Assignment, c Clause) bool {
	for _, lit := range c {
		if lit > 0 {
			if x.Get(lit) {
				return true
			}
		} else {
			if !x.Get(-lit) {
				return true
			}
		}
	}
	return false
}

// SatCrossover is Sat's partial-assignment counterpart, used while a
// crossover child z is still being built. Any literal whose variable is
// undefined in z makes the clause not-yet-satisfied at that literal;
// scanning continues to later literals. Equivalent formulation: the
// clause is satisfied iff some defined literal evaluates true.
func SatCrossover(z *Assignment, c Clause) bool {
	for _, lit := range c {
		v := lit
		if v < 0 {
			v = -v
		}
		if !z.IsDefined(v) {
			continue
		}
		if lit > 0 {
			if z.Get(v) {
				return true
			}
		} else {
			if !z.Get(v) {
				return true
			}
		}
	}
	return false
}

// Degree returns the number of literals of c that evaluate true under x.
func Degree(x *Assignment, c Clause) int {
	n := 0
	for _, lit := range c {
		if lit > 0 {
			if x.Get(lit) {
				n++
			}
		} else {
			if !x.Get(-lit) {
				n++
			}
		}
	}
	return n
}

// Evaluate returns the number of clauses of f not satisfied by x,
// memoised in x's fitness cache and invalidated by any mutation of x.
func Evaluate(f *Formula, x *Assignment) int {
	if x.fitnessValid {
		return x.fitnessValue
	}
	unsatisfied := 0
	for _, c := range f.Clauses {
		if !Sat(x, c) {
			unsatisfied++
		}
	}
	x.fitnessValue = unsatisfied
	x.fitnessValid = true
	return unsatisfied
}

// Improvement returns the reduction in unsatisfied-clause count obtained
// by flipping variable v in x: evaluate(x) - evaluate(x with v flipped).
// A positive result means the flip improves fitness.
func Improvement(f *Formula, x *Assignment, v int) int {
	before := Evaluate(f, x)
	flipped := x.Clone()
	flipped.Flip(v)
	return before - Evaluate(f, flipped)
}
