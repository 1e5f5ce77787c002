package objcatalog

import (
	"errors"
	"fmt"

	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/baseline"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/parser"
)

// ErrWorkbookNotFound indicates the input workbook does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// ErrInvalidFormat indicates the workbook exists but excelize cannot open it.
var ErrInvalidFormat = errors.New("cannot open workbook")

// Errors raised by the stage packages, re-exported for callers of Run.
var (
	ErrSheetNotFound    = parser.ErrSheetNotFound
	ErrTemplateNotFound = output.ErrTemplateNotFound
	ErrMarkerNotFound   = output.ErrMarkerNotFound
	ErrNoBaseline       = baseline.ErrNoBaseline
)

// Stage names a pipeline step.
type Stage string

const (
	StageCheck    Stage = "check"
	StageExtract  Stage = "extract"
	StageWrite    Stage = "write"
	StageSnapshot Stage = "snapshot"
)

// StageError represents a fatal error in one pipeline stage.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
