package gasat

import (
	"context"
	"time"
)

// Run executes the GASAT generation loop described in spec §4.5 until a
// satisfying assignment is found, MaxGenerations is reached, or ctx is
// cancelled. It returns the satisfying assignment if one was found,
// otherwise the fittest member of the final population, alongside the
// terminal event describing how the run ended.
//
// ctx is polled once per generation (spec §5): cancellation abandons the
// loop and surfaces the best-so-far with ErrCancelled. Mid-descent
// cancellation is not supported; a tabu descent always runs to
// completion once started.
func (e *Engine) Run(ctx context.Context) (*Assignment, TerminalEvent, error) {
	startTime := time.Now()
	e.CreatePopulation()
	e.generation = 0

	choice := StandardChoice
	if e.cfg.IsRVCF {
		choice = RVCFChoice
	}

	var runErr error
	satisfied := e.IsSatisfied()
	for satisfied == nil && e.generation < e.cfg.MaxGenerations {
		select {
		case <-ctx.Done():
			runErr = ErrCancelled
		default:
		}
		if runErr != nil {
			break
		}

		x, y := e.Select()
		child := e.crossover(x, y)
		child, err := e.TabuSearch(child, choice)
		if err != nil {
			runErr = err
			break
		}
		e.Replace(child)

		e.setGeneration(e.generation+1, startTime, child)

		satisfied = e.IsSatisfied()
		e.metrics.observeGeneration(satisfied != nil)
	}

	result := satisfied
	if result == nil {
		result = e.Fittest()
	}

	ev := TerminalEvent{
		Solved:                  satisfied != nil,
		FinalFitness:            e.evaluate(result),
		Generation:              e.generation,
		MaxGenerations:          e.cfg.MaxGenerations,
		StartTime:               startTime,
		EndTime:                 time.Now(),
		FinalAssignment:         result,
		ClausesSatisfiedByFinal: e.clausesSatisfiedBy(result),
	}
	e.log.WithFields(logFields(ev)).Info("gasat: run finished")
	e.notifyTerminal(ev)

	return result, ev, runErr
}

// setGeneration advances the generation counter and fires the progress
// notification, mirroring the source's property setter that broadcasts
// on every assignment to the counter.
func (e *Engine) setGeneration(gen int, startTime time.Time, child *Assignment) {
	e.generation = gen
	best := e.Fittest()
	ev := ProgressEvent{
		Generation:              gen,
		MaxGenerations:          e.cfg.MaxGenerations,
		StartTime:               startTime,
		BestFitness:             e.evaluate(best),
		BestAssignment:          best,
		CurrentChildFitness:     e.evaluate(child),
		CurrentChild:            child,
		NVars:                   e.formula.NVars,
		NClauses:                e.formula.NClauses(),
		ClausesSatisfiedByBest:  e.clausesSatisfiedBy(best),
		ClausesSatisfiedByChild: e.clausesSatisfiedBy(child),
	}
	e.log.WithFields(map[string]interface{}{
		"generation":   gen,
		"max_generations": e.cfg.MaxGenerations,
		"best_fitness": ev.BestFitness,
		"child_fitness": ev.CurrentChildFitness,
		"elapsed":      time.Since(startTime),
	}).Debug("gasat: generation advanced")
	e.metrics.bestFitness.Set(float64(ev.BestFitness))
	e.notifyProgress(ev)
}

func logFields(ev TerminalEvent) map[string]interface{} {
	return map[string]interface{}{
		"solved":        ev.Solved,
		"final_fitness": ev.FinalFitness,
		"generation":    ev.Generation,
		"elapsed":       ev.EndTime.Sub(ev.StartTime),
	}
}
