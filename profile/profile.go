// Package profile implements the data point graph: structural editing guarded against
// dependency cycles, recursive value resolution and the export projection.
//
// A Profile is not safe for concurrent use; edits and evaluations are expected
// to run on a single goroutine.
package profile

import (
	"fmt"

	"github.com/viant/dpgraph/calculation"
	"github.com/viant/dpgraph/logger"
)

// Profile is an ordered collection of data points
type Profile struct {
	Name        string
	Description string

	points  map[Handle]*DataPoint
	order   []Handle
	index   map[Handle]int // position in order
	version uint64
	saved   uint64
}

// Option configures a Profile
type Option func(*Profile)

// WithDescription sets the profile description
func WithDescription(description string) Option {
	return func(p *Profile) {
		p.Description = description
	}
}

// New creates an empty profile
func New(name string, options ...Option) *Profile {
	p := &Profile{
		Name:   name,
		points: make(map[Handle]*DataPoint),
		index:  make(map[Handle]int),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Len returns the number of points
func (p *Profile) Len() int {
	return len(p.order)
}

// Version returns a counter incremented by every successful edit
func (p *Profile) Version() uint64 {
	return p.version
}

// Dirty returns true if the profile was edited since the last MarkClean
func (p *Profile) Dirty() bool {
	return p.version != p.saved
}

// MarkClean records the current version as persisted
func (p *Profile) MarkClean() {
	p.saved = p.version
}

// Point returns a copy of the point at index
func (p *Profile) Point(index int) (DataPoint, error) {
	point, err := p.at(index)
	if err != nil {
		return DataPoint{}, err
	}
	return *point.clone(), nil
}

// Points returns copies of all points in display order
func (p *Profile) Points() []DataPoint {
	var result = make([]DataPoint, 0, len(p.order))
	for _, handle := range p.order {
		result = append(result, *p.points[handle].clone())
	}
	return result
}

// IndexOf returns the position of the point with id, or -1
func (p *Profile) IndexOf(id string) int {
	for i, handle := range p.order {
		if p.points[handle].ID == id {
			return i
		}
	}
	return -1
}

// IndexOfHandle returns the position of the point with handle, or -1
func (p *Profile) IndexOfHandle(handle Handle) int {
	if i, ok := p.index[handle]; ok {
		return i
	}
	return -1
}

// SourceIndices returns the current positions of the point's sources
func (p *Profile) SourceIndices(index int) ([]int, error) {
	point, err := p.at(index)
	if err != nil {
		return nil, err
	}
	var result = make([]int, 0, len(point.Sources))
	for _, source := range point.Sources {
		result = append(result, p.index[source])
	}
	return result, nil
}

// Dependents returns ids of points using the point at index as a source
func (p *Profile) Dependents(index int) ([]string, error) {
	point, err := p.at(index)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, dependent := range p.dependents(point.handle) {
		result = append(result, dependent.ID)
	}
	return result, nil
}

// EligibleSources returns positions that the point at index can use as a source
func (p *Profile) EligibleSources(index int) ([]int, error) {
	point, err := p.at(index)
	if err != nil {
		return nil, err
	}
	var result []int
	for i, candidate := range p.order {
		if !p.createsCycle(point.handle, candidate) {
			result = append(result, i)
		}
	}
	return result, nil
}

func (p *Profile) at(index int) (*DataPoint, error) {
	if index < 0 || index >= len(p.order) {
		return nil, indexError(index, len(p.order))
	}
	return p.points[p.order[index]], nil
}

func (p *Profile) dependents(handle Handle) []*DataPoint {
	var result []*DataPoint
	for _, candidate := range p.order {
		point := p.points[candidate]
		if candidate != handle && point.references(handle) {
			result = append(result, point)
		}
	}
	return result
}

func (p *Profile) touch() {
	p.version++
}

func (p *Profile) reindex() {
	p.index = make(map[Handle]int, len(p.order))
	for i, handle := range p.order {
		p.index[handle] = i
	}
}

func (p *Profile) push(point *DataPoint) int {
	if point.handle == "" {
		point.handle = newHandle()
	}
	p.points[point.handle] = point
	p.order = append(p.order, point.handle)
	p.index[point.handle] = len(p.order) - 1
	return len(p.order) - 1
}

func (p *Profile) remove(handle Handle) {
	position := p.index[handle]
	p.order = append(p.order[:position], p.order[position+1:]...)
	delete(p.points, handle)
	p.reindex()
}

func (p *Profile) nextID() string {
	for n := len(p.order); ; n++ {
		id := fmt.Sprintf("DataPoint%d", n)
		if p.IndexOf(id) == -1 {
			return id
		}
	}
}

// defaultSource returns the first point, in display order, that handle can use as a source
func (p *Profile) defaultSource(handle Handle) (Handle, bool) {
	for _, candidate := range p.order {
		if !p.createsCycle(handle, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// fill appends default sources to point until it holds at least min sources
func (p *Profile) fill(point *DataPoint, limits calculation.Range) error {
	for len(point.Sources) < limits.Min {
		source, ok := p.defaultSource(point.handle)
		if !ok {
			return &RangeError{ID: point.ID, Count: len(point.Sources), Min: limits.Min, Max: limits.Max}
		}
		point.Sources = append(point.Sources, source)
	}
	return nil
}

func (p *Profile) strategy(point *DataPoint) calculation.Strategy {
	strategy, err := calculation.Lookup(point.Calculation)
	if err != nil {
		// every calculation name is checked before it is assigned
		panic(fmt.Sprintf("data point %v: %v", point.ID, err))
	}
	return strategy
}

func (p *Profile) limits(point *DataPoint) calculation.Range {
	if !point.IsCalculated() {
		return calculation.Range{}
	}
	return p.strategy(point).Range()
}

func logEdit(operation string, keyvals ...any) {
	logger.Debug("profile edit: "+operation, keyvals...)
}
