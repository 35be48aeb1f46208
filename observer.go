package gasat

import "time"

// ProgressEvent carries the state broadcast on every generation
// transition (spec §6).
type ProgressEvent struct {
	Generation             int
	MaxGenerations         int
	StartTime              time.Time
	BestFitness            int
	BestAssignment         *Assignment
	CurrentChildFitness    int
	CurrentChild           *Assignment
	NVars                  int
	NClauses               int
	ClausesSatisfiedByBest int
	ClausesSatisfiedByChild int
}

// TerminalEvent carries the state broadcast once when a run ends.
type TerminalEvent struct {
	Solved               bool
	FinalFitness         int
	Generation           int
	MaxGenerations       int
	StartTime            time.Time
	EndTime              time.Time
	FinalAssignment      *Assignment
	ClausesSatisfiedByFinal int
}

// Observer is notified synchronously after every generation. Observers
// must not mutate core state; they may copy whatever they need from the
// event. A panicking observer is recovered and logged at the driver
// boundary, never propagated to the caller of Run.
type Observer func(ProgressEvent)

// TerminalObserver is notified once when a run ends.
type TerminalObserver func(TerminalEvent)

func (e *Engine) notifyProgress(ev ProgressEvent) {
	for _, obs := range e.observers {
		e.safeNotify(func() { obs(ev) })
	}
}

func (e *Engine) notifyTerminal(ev TerminalEvent) {
	for _, obs := range e.terminalObs {
		e.safeNotify(func() { obs(ev) })
	}
}

func (e *Engine) safeNotify(call func()) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Error("gasat: observer callback panicked; ignoring")
		}
	}()
	call()
}

func (e *Engine) clausesSatisfiedBy(x *Assignment) int {
	n := 0
	for _, c := range e.formula.Clauses {
		if e.sat(x, c) {
			n++
		}
	}
	return n
}
