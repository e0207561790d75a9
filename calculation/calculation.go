// Package calculation defines the strategies that derive a data point value from its sources.
package calculation

import (
	"errors"
	"math"
	"strconv"
)

// ErrUnknown is returned when a calculation name is not registered
var ErrUnknown = errors.New("unknown calculation")

// Source is a resolved input of a calculation.
// A strategy decides which accessor it calls on each source.
type Source interface {
	Number() float64
	Flag() bool
	Text() string
}

// Range is the accepted number of sources
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains returns true if count lies within the range
func (r Range) Contains(count int) bool {
	return count >= r.Min && count <= r.Max
}

// Strategy is a stateless calculation referenced by name
type Strategy interface {
	// Name returns the registered name
	Name() string
	// Range returns the accepted source count
	Range() Range
	// Description returns what the output looks like, i.e. "[0] + [1] + ..."
	Description() string
	Number(sources []Source) float64
	Flag(sources []Source) bool
	Text(sources []Source) string
}

func sum(sources []Source) float64 {
	var total float64
	for _, source := range sources {
		total += source.Number()
	}
	return total
}

// floorTo truncates v towards negative infinity keeping scale decimal places
func floorTo(v, scale float64) float64 {
	return math.Floor(v*scale) / scale
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drops the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
