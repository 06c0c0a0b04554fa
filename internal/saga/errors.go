package saga

import (
	"errors"
	"fmt"
)

// ErrCompensationFailed marks a rollback that could not complete
var ErrCompensationFailed = errors.New("saga compensation failed")

// StepError reports which step of a saga failed. It unwraps to the step's error.
type StepError struct {
	Saga  string
	Step  string
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("saga %s: step %q failed: %v", e.Saga, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CompensationError reports a compensation that failed during rollback.
// It unwraps to ErrCompensationFailed and the compensation's own error, never to
// the step failure that triggered the rollback, which is kept in Cause.
type CompensationError struct {
	Saga  string
	Step  string
	Err   error
	Cause *StepError
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("saga %s: compensation of step %q failed: %v (rolling back after: %v)", e.Saga, e.Step, e.Err, e.Cause)
}

func (e *CompensationError) Unwrap() []error {
	return []error{ErrCompensationFailed, e.Err}
}
