package saga

import (
	"context"
	"fmt"
)

// Step is one unit of work in a saga.
// Compensate receives the value Invoke returned and is only called for steps whose Invoke succeeded.
type Step interface {
	Name() string
	Invoke(ctx context.Context) (any, error)
	Compensate(ctx context.Context, result any) error
	HasCompensation() bool
}

// InvokeFunc performs a step and returns its result
type InvokeFunc[T any] func(ctx context.Context) (T, error)

// CompensateFunc undoes a step given the result its invoke produced
type CompensateFunc[T any] func(ctx context.Context, result T) error

type funcStep[T any] struct {
	name       string
	invoke     InvokeFunc[T]
	compensate CompensateFunc[T]
}

// NewStep builds a typed step. compensate may be nil for steps that need no undo.
func NewStep[T any](name string, invoke InvokeFunc[T], compensate CompensateFunc[T]) Step {
	return &funcStep[T]{name: name, invoke: invoke, compensate: compensate}
}

func (s *funcStep[T]) Name() string { return s.name }

func (s *funcStep[T]) HasCompensation() bool { return s.compensate != nil }

func (s *funcStep[T]) Invoke(ctx context.Context) (any, error) {
	return s.invoke(ctx)
}

func (s *funcStep[T]) Compensate(ctx context.Context, result any) error {
	if s.compensate == nil {
		return nil
	}
	typed, ok := result.(T)
	if !ok && result != nil {
		return fmt.Errorf("step %q: unexpected result type %T", s.name, result)
	}
	return s.compensate(ctx, typed)
}
