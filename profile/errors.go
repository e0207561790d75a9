package profile

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrIndexOutOfRange is returned when an index does not address a point or a source
var ErrIndexOutOfRange = errors.New("index out of range")

// ValidationError reports an invalid identifier
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.ID, e.Reason)
}

// DependencyError reports a point that is still used as a source
type DependencyError struct {
	ID         string
	Dependents []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("unable to delete %v: used as a source by %v", e.ID, strings.Join(e.Dependents, ", "))
}

// CycleError reports a source reference that would close a dependency loop
type CycleError struct {
	ID     string
	Source string
}

func (e *CycleError) Error() string {
	if e.ID == e.Source {
		return fmt.Sprintf("%v cannot list itself as a source", e.ID)
	}
	return fmt.Sprintf("%v cannot use %v as a source: %v already depends on %v", e.ID, e.Source, e.Source, e.ID)
}

// RangeError reports a source count outside of the calculation bounds
type RangeError struct {
	ID    string
	Count int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d sources outside of required range [%d,%d]", e.ID, e.Count, e.Min, e.Max)
}

func indexError(index, size int) error {
	return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, size)
}

// NumberError reports a number that is NaN or infinite
type NumberError struct {
	ID    string
	Value float64
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%v: number %v is not finite", e.ID, e.Value)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
