package gasat

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Controller coordinates at most one active GASAT run at a time,
// following the original implementation's singleton run guard. Starting
// a second run while one is active is a usage error surfaced to the
// caller rather than silently queued or rejected by blocking.
type Controller struct {
	mu     sync.Mutex
	active *Run
}

// Run represents one in-flight or completed GASAT search started by a
// Controller.
type Run struct {
	engine *Engine
	cancel context.CancelFunc

	done   chan struct{}
	result *Assignment
	event  TerminalEvent
	err    error
}

// Active reports whether c currently has a run in progress.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

// Start validates cfg and formula, then launches a run in a background
// goroutine. It returns ErrAlreadyRunning if a run is already active.
func (c *Controller) Start(ctx context.Context, formula *Formula, cfg Config, log logrus.FieldLogger, metrics *Metrics) (*Run, error) {
	if err := formula.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.active != nil {
		c.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	run := &Run{
		engine: NewEngine(formula, cfg, log, metrics),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.active = run
	c.mu.Unlock()

	go func() {
		result, ev, err := run.engine.Run(runCtx)
		run.result, run.event, run.err = result, ev, err
		c.mu.Lock()
		if c.active == run {
			c.active = nil
		}
		c.mu.Unlock()
		close(run.done)
	}()

	return run, nil
}

// Cancel requests cooperative cancellation of r. It is safe to call more
// than once and after r has already finished.
func (r *Run) Cancel() { r.cancel() }

// Done returns a channel closed once the run has finished.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run finishes and returns its result.
func (r *Run) Wait() (*Assignment, TerminalEvent, error) {
	<-r.done
	return r.result, r.event, r.err
}

// Engine exposes the underlying Engine so callers can register observers
// before the run completes. It is only safe to call AddObserver /
// AddTerminalObserver before the goroutine started by Start begins
// iterating generations; in practice that means immediately after Start
// returns.
func (r *Run) Engine() *Engine { return r.engine }
