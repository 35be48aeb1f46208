package gasat

import "github.com/pkg/errors"

// ErrCancelled is returned by Run and the Controller when a search is
// abandoned via cooperative cancellation. It is not a failure: callers
// should treat it as "best-so-far was returned early".
var ErrCancelled = errors.New("gasat: search cancelled")

// ErrAlreadyRunning is returned by Controller.Start when a search is
// already active.
var ErrAlreadyRunning = errors.New("gasat: a search is already running")

// MalformedFormulaError reports a defect in a formula: an invalid DIMACS
// problem line, a literal outside [1, n], a missing terminating zero, a
// clause-count mismatch, or (from Formula.Validate) an empty clause, a zero
// literal, or a negative variable count. A missing problem line is not
// reported: ParseDIMACS then infers the variable count.
type MalformedFormulaError struct {
	msg string
}

func (e *MalformedFormulaError) Error() string { return "malformed formula: " + e.msg }

func malformedFormulaf(format string, args ...interface{}) error {
	return &MalformedFormulaError{msg: errors.Errorf(format, args...).Error()}
}

// BadConfigurationError reports an invalid Config, e.g. a sub-population
// larger than the population, an unknown crossover operator, or a
// non-positive size parameter. It is fatal before a search starts.
type BadConfigurationError struct {
	msg string
}

func (e *BadConfigurationError) Error() string { return "bad configuration: " + e.msg }

func badConfigurationf(format string, args ...interface{}) error {
	return &BadConfigurationError{msg: errors.Errorf(format, args...).Error()}
}

// EmptyChoiceSetError reports that the diversification step needed to
// flip a variable in a clause whose every literal is currently forbidden.
// The contract (see design notes) is to propagate this as a fatal error
// rather than silently relax the forbidden set or leave the clause
// unsatisfied; callers are expected to pick k and max_false so this stays
// unreachable in steady state.
type EmptyChoiceSetError struct {
	ClauseIndex int
}

func (e *EmptyChoiceSetError) Error() string {
	return errors.Errorf("diversification: clause %d has no eligible literal to flip (all forbidden)", e.ClauseIndex).Error()
}
