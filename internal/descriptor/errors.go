package descriptor

import "fmt"

// EvaluationError reports descriptor text that is not part of the supported
// declarative subset, or that fails to expand.
type EvaluationError struct {
	Source string
	Line   uint
	Err    error
}

func (e *EvaluationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to evaluate %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to evaluate %s: %v", e.Source, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// UndefinedFunctionError is returned when a required function was never
// declared.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("function %q is not defined", e.Name)
}
