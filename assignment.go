package gasat

import "math/rand"

// Assignment is a candidate truth vector over variables 1..n. It may be
// partial: each variable carries a defined flag distinct from its value,
// so "undefined" is never conflated with "false". The fitness cache is
// invalidated by every mutating method; nothing that didn't compute the
// fitness ever stores it.
type Assignment struct {
	n       int
	value   []bool
	defined []bool

	fitnessValid bool
	fitnessValue int
}

// NewAssignment returns an n-variable assignment with every variable
// undefined. It is the starting point for a crossover child: the
// operators partially fill it in before the final Allocate call
// completes it.
func NewAssignment(n int) *Assignment {
	return &Assignment{
		n:       n,
		value:   make([]bool, n+1),
		defined: make([]bool, n+1),
	}
}

// NewRandomAssignment returns a complete n-variable assignment with each
// variable's value drawn independently from rng.
func NewRandomAssignment(n int, rng *rand.Rand) *Assignment {
	a := NewAssignment(n)
	for v := 1; v <= n; v++ {
		a.value[v] = rng.Intn(2) == 1
		a.defined[v] = true
	}
	return a
}

// Clone returns a deep copy of a, used by the fitness/improvement
// machinery and the tabu search to try a flip without disturbing the
// original.
func (a *Assignment) Clone() *Assignment {
	b := &Assignment{
		n:            a.n,
		value:        make([]bool, len(a.value)),
		defined:      make([]bool, len(a.defined)),
		fitnessValid: a.fitnessValid,
		fitnessValue: a.fitnessValue,
	}
	copy(b.value, a.value)
	copy(b.defined, a.defined)
	return b
}

// NVars returns the number of variables the assignment covers.
func (a *Assignment) NVars() int { return a.n }

// Get returns the current value of variable v. The result is meaningless
// if v is not defined.
func (a *Assignment) Get(v int) bool { return a.value[v] }

// IsDefined reports whether variable v has been assigned a value.
func (a *Assignment) IsDefined(v int) bool { return a.defined[v] }

// Set writes bit to variable v and marks it defined.
func (a *Assignment) Set(v int, bit bool) {
	a.value[v] = bit
	a.defined[v] = true
	a.invalidate()
}

// SetDefined marks v as defined without changing its value. Idempotent.
func (a *Assignment) SetDefined(v int) {
	a.defined[v] = true
	a.invalidate()
}

// Flip toggles the bit at v and marks it defined.
func (a *Assignment) Flip(v int) {
	a.value[v] = !a.value[v]
	a.defined[v] = true
	a.invalidate()
}

func (a *Assignment) invalidate() {
	a.fitnessValid = false
}

// Allocate completes z: for every variable still undefined in z, it
// copies the value from whichever of x or y is fitter, ties going to x.
// After Allocate, z is complete. Fitness comparison is supplied by the
// caller (via preferX) because it depends on the formula, which
// Assignment itself knows nothing about.
func (z *Assignment) Allocate(x, y *Assignment, preferX bool) {
	for v := 1; v <= z.n; v++ {
		if z.defined[v] {
			continue
		}
		if preferX {
			z.Set(v, x.Get(v))
		} else {
			z.Set(v, y.Get(v))
		}
	}
}
