package chartaxis

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ResolveError represents an error while resolving a chart axis.
type ResolveError struct {
	SheetName string
	Chart     string
	Component string // "x_axis", "y_axis"
	Err       error
}

func (e *ResolveError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("resolve error in chart %q (%s): %v", e.Chart, e.Component, e.Err)
	}
	return fmt.Sprintf("resolve error in sheet %q chart %q (%s): %v", e.SheetName, e.Chart, e.Component, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// NewResolveError creates a new ResolveError.
func NewResolveError(sheetName, chart, component string, err error) *ResolveError {
	return &ResolveError{
		SheetName: sheetName,
		Chart:     chart,
		Component: component,
		Err:       err,
	}
}
