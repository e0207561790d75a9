package profile

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/dpgraph/calculation"
)

// Validate checks every invariant of the document and reports all violations
func (d *Document) Validate() error {
	var result *multierror.Error
	ids := make(map[string]int, len(d.Points))
	for i, point := range d.Points {
		if err := ValidateIdentifier(point.ID); err != nil {
			result = multierror.Append(result, fmt.Errorf("point %d: %w", i, err))
		} else if previous, ok := ids[point.ID]; ok {
			result = multierror.Append(result, &ValidationError{ID: point.ID, Reason: fmt.Sprintf("duplicated at %d and %d", previous, i)})
		} else {
			ids[point.ID] = i
		}
		if !isFinite(point.Number) {
			result = multierror.Append(result, &NumberError{ID: point.ID, Value: point.Number})
		}
		if !point.Kind.IsValid() {
			result = multierror.Append(result, fmt.Errorf("point %v: unsupported value kind: %q", point.ID, point.Kind))
		}
		name := point.calculation()
		if name == "" {
			if len(point.Sources) > 0 {
				result = multierror.Append(result, fmt.Errorf("point %v: sources without calculation", point.ID))
			}
			continue
		}
		strategy, err := calculation.Lookup(name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("point %v: %w", point.ID, err))
			continue
		}
		if limits := strategy.Range(); !limits.Contains(len(point.Sources)) {
			result = multierror.Append(result, &RangeError{ID: point.ID, Count: len(point.Sources), Min: limits.Min, Max: limits.Max})
		}
		for _, source := range point.Sources {
			switch {
			case source < 0 || source >= len(d.Points):
				result = multierror.Append(result, fmt.Errorf("point %v: source %w", point.ID, indexError(source, len(d.Points))))
			case source == i:
				result = multierror.Append(result, &CycleError{ID: point.ID, Source: point.ID})
			}
		}
	}
	if result == nil {
		if from, to, ok := d.backEdge(); ok {
			result = multierror.Append(result, &CycleError{ID: d.Points[from].ID, Source: d.Points[to].ID})
		}
	}
	return result.ErrorOrNil()
}

// backEdge returns a source reference closing a loop; sources must be in range
func (d *Document) backEdge() (int, int, bool) {
	const (
		unvisited = iota
		active
		done
	)
	state := make([]int, len(d.Points))
	var visit func(i int) (int, int, bool)
	visit = func(i int) (int, int, bool) {
		state[i] = active
		for _, source := range d.Points[i].Sources {
			switch state[source] {
			case active:
				return i, source, true
			case unvisited:
				if from, to, ok := visit(source); ok {
					return from, to, true
				}
			}
		}
		state[i] = done
		return 0, 0, false
	}
	for i := range d.Points {
		if state[i] == unvisited {
			if from, to, ok := visit(i); ok {
				return from, to, true
			}
		}
	}
	return 0, 0, false
}
