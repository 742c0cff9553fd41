package assembler

import "fmt"

// Stage names used in StageError.
const (
	StageStaging        = "staging"
	StageEvaluate       = "evaluate"
	StageOverride       = "override"
	StageRewritePrepare = "rewrite-prepare"
	StageEmit           = "emit"
)

// StageError wraps the failure of one pipeline stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MissingInputError is returned before anything is written when the recipe
// directory, its descriptor or the patch cannot be read.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input %s: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}
