// Package saga runs ordered steps with compensating rollback.
//
// Steps execute strictly in order. When an invoke fails, every step that already
// invoked is compensated in reverse order, then the failure is returned as a
// *StepError. A failing compensation stops the rollback and is returned as a
// *CompensationError. Nothing is retried.
package saga

import (
	"context"
	"time"

	"github.com/osse101/HexHarvest_Go/internal/logger"
	"github.com/osse101/HexHarvest_Go/internal/metrics"
)

// Saga is an immutable ordered list of steps
type Saga struct {
	name  string
	steps []Step
}

// Name returns the saga name used in logs, metrics and errors
func (s *Saga) Name() string { return s.name }

// Steps returns the step names in execution order
func (s *Saga) Steps() []string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs the saga and returns each step's result in order
func (s *Saga) Execute(ctx context.Context) ([]any, error) {
	log := logger.FromContext(ctx).With("saga", s.name)
	start := time.Now()
	defer func() {
		metrics.SagaDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	}()

	results := make([]any, 0, len(s.steps))
	for i, step := range s.steps {
		log.Debug("Executing saga step", "step", step.Name(), "index", i)

		result, err := s.invoke(ctx, step)
		if err != nil {
			stepErr := &StepError{Saga: s.name, Step: step.Name(), Index: i, Err: err}
			log.Warn("Saga step failed, rolling back", "step", step.Name(), "index", i, "error", err)

			if cerr := s.rollback(ctx, results, stepErr); cerr != nil {
				metrics.SagaExecutions.WithLabelValues(s.name, metrics.OutcomeFailed).Inc()
				return nil, cerr
			}

			metrics.SagaExecutions.WithLabelValues(s.name, metrics.OutcomeCompensated).Inc()
			log.Info("Saga rolled back", "failed_step", step.Name(), "compensated", len(results))
			return nil, stepErr
		}

		results = append(results, result)
	}

	metrics.SagaExecutions.WithLabelValues(s.name, metrics.OutcomeSuccess).Inc()
	log.Debug("Saga completed", "steps", len(s.steps), "duration", time.Since(start))
	return results, nil
}

func (s *Saga) invoke(ctx context.Context, step Step) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return step.Invoke(ctx)
}

// rollback compensates the first len(results) steps in reverse order
func (s *Saga) rollback(ctx context.Context, results []any, cause *StepError) error {
	log := logger.FromContext(ctx).With("saga", s.name)
	// Undo must still run when the failure was a cancelled context
	ctx = context.WithoutCancel(ctx)

	for i := len(results) - 1; i >= 0; i-- {
		step := s.steps[i]
		if !step.HasCompensation() {
			continue
		}

		log.Debug("Compensating saga step", "step", step.Name(), "index", i)
		if err := step.Compensate(ctx, results[i]); err != nil {
			metrics.SagaCompensations.WithLabelValues(s.name, step.Name(), metrics.OutcomeFailed).Inc()
			log.Error("Saga compensation failed, aborting rollback",
				"step", step.Name(),
				"index", i,
				"error", err,
				"cause", cause.Err)
			return &CompensationError{Saga: s.name, Step: step.Name(), Err: err, Cause: cause}
		}
		metrics.SagaCompensations.WithLabelValues(s.name, step.Name(), metrics.OutcomeSuccess).Inc()
	}
	return nil
}
