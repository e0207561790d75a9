package profile

import (
	"github.com/viant/dpgraph/calculation"
	"github.com/viant/dpgraph/logger"
)

// AddPoint appends a stored point with a generated unique id and returns its position
func (p *Profile) AddPoint(kind Kind) int {
	if !kind.IsValid() {
		logger.Warn("unsupported value kind, using Number", "kind", kind)
		kind = Number
	}
	point := &DataPoint{ID: p.nextID(), Kind: kind}
	index := p.push(point)
	p.touch()
	logEdit("add", "id", point.ID, "kind", kind)
	return index
}

// DeletePoint removes the point at index. It fails with a DependencyError
// while other points still use it as a source.
func (p *Profile) DeletePoint(index int) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if dependents := p.dependents(point.handle); len(dependents) > 0 {
		var ids = make([]string, 0, len(dependents))
		for _, dependent := range dependents {
			ids = append(ids, dependent.ID)
		}
		return &DependencyError{ID: point.ID, Dependents: ids}
	}
	p.remove(point.handle)
	p.touch()
	logEdit("delete", "id", point.ID)
	return nil
}

// DetachPoint removes the point at index even if it is used as a source.
// Each dependent loses the reference and is refilled up to its calculation
// minimum with default sources; a dependent that cannot be refilled has its
// calculation removed.
func (p *Profile) DetachPoint(index int) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	dependents := p.dependents(point.handle)
	p.remove(point.handle)
	for _, dependent := range dependents {
		var sources = make([]Handle, 0, len(dependent.Sources))
		for _, source := range dependent.Sources {
			if source != point.handle {
				sources = append(sources, source)
			}
		}
		dependent.Sources = sources
		if err := p.fill(dependent, p.limits(dependent)); err != nil {
			logger.Warn("removing calculation, no eligible source left", "id", dependent.ID, "calculation", dependent.Calculation)
			dependent.Calculation = ""
			dependent.Sources = nil
		}
	}
	p.touch()
	logEdit("detach", "id", point.ID, "dependents", len(dependents))
	return nil
}

// SwapPoints exchanges the display positions of two points.
// Sources keep referencing the same points.
func (p *Profile) SwapPoints(i, j int) error {
	if _, err := p.at(i); err != nil {
		return err
	}
	if _, err := p.at(j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	p.order[i], p.order[j] = p.order[j], p.order[i]
	p.index[p.order[i]] = i
	p.index[p.order[j]] = j
	p.touch()
	logEdit("swap", "from", i, "to", j)
	return nil
}

// RenamePoint sets the point id, correcting it into a valid unique identifier.
// It returns the id actually assigned.
func (p *Profile) RenamePoint(index int, id string) (string, error) {
	point, err := p.at(index)
	if err != nil {
		return "", err
	}
	assigned := SanitizeIdentifier(id, func(candidate string) bool {
		position := p.IndexOf(candidate)
		return position != -1 && position != index
	})
	if assigned != id {
		logger.Debug("identifier corrected", "requested", id, "assigned", assigned)
	}
	if assigned != point.ID {
		logEdit("rename", "from", point.ID, "to", assigned)
		point.ID = assigned
		p.touch()
	}
	return assigned, nil
}

// SetCalculation attaches the named calculation, or removes it for an empty name or None.
// Sources are defaulted up to the calculation minimum and truncated down to its maximum.
func (p *Profile) SetCalculation(index int, name string) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if name == "" || name == calculation.None {
		if point.IsCalculated() {
			point.Calculation = ""
			point.Sources = nil
			p.touch()
			logEdit("calculation", "id", point.ID, "name", calculation.None)
		}
		return nil
	}
	strategy, err := calculation.Lookup(name)
	if err != nil {
		return err
	}
	updated := point.clone()
	updated.Calculation = name
	limits := strategy.Range()
	if err = p.fill(updated, limits); err != nil {
		return err
	}
	if len(updated.Sources) > limits.Max {
		updated.Sources = updated.Sources[:limits.Max]
	}
	p.points[point.handle] = updated
	p.touch()
	logEdit("calculation", "id", point.ID, "name", name, "sources", len(updated.Sources))
	return nil
}

// AddSource appends the point at sourceIndex to the sources of the point at index
func (p *Profile) AddSource(index, sourceIndex int) error {
	point, source, err := p.edge(index, sourceIndex)
	if err != nil {
		return err
	}
	limits := p.limits(point)
	if !point.IsCalculated() || len(point.Sources)+1 > limits.Max {
		return &RangeError{ID: point.ID, Count: len(point.Sources) + 1, Min: limits.Min, Max: limits.Max}
	}
	point.Sources = append(point.Sources, source.handle)
	p.touch()
	logEdit("add source", "id", point.ID, "source", source.ID)
	return nil
}

// SetSource replaces the source at position pos of the point at index
func (p *Profile) SetSource(index, pos, sourceIndex int) error {
	point, source, err := p.edge(index, sourceIndex)
	if err != nil {
		return err
	}
	if pos < 0 || pos >= len(point.Sources) {
		return indexError(pos, len(point.Sources))
	}
	point.Sources[pos] = source.handle
	p.touch()
	logEdit("set source", "id", point.ID, "position", pos, "source", source.ID)
	return nil
}

// RemoveSource removes the source at position pos of the point at index
func (p *Profile) RemoveSource(index, pos int) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if pos < 0 || pos >= len(point.Sources) {
		return indexError(pos, len(point.Sources))
	}
	limits := p.limits(point)
	if len(point.Sources)-1 < limits.Min {
		return &RangeError{ID: point.ID, Count: len(point.Sources) - 1, Min: limits.Min, Max: limits.Max}
	}
	point.Sources = append(point.Sources[:pos], point.Sources[pos+1:]...)
	p.touch()
	logEdit("remove source", "id", point.ID, "position", pos)
	return nil
}

// edge resolves a proposed source reference and rejects it if it would close a cycle
func (p *Profile) edge(index, sourceIndex int) (*DataPoint, *DataPoint, error) {
	point, err := p.at(index)
	if err != nil {
		return nil, nil, err
	}
	source, err := p.at(sourceIndex)
	if err != nil {
		return nil, nil, err
	}
	if p.createsCycle(point.handle, source.handle) {
		return nil, nil, &CycleError{ID: point.ID, Source: source.ID}
	}
	return point, source, nil
}

// SetKind changes the native value kind of the point at index
func (p *Profile) SetKind(index int, kind Kind) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if kind, err = ParseKind(string(kind)); err != nil {
		return err
	}
	if point.Kind != kind {
		point.Kind = kind
		p.touch()
	}
	return nil
}

// SetExport sets whether the point at index is exported
func (p *Profile) SetExport(index int, export bool) error {
	return p.update(index, func(point *DataPoint) bool {
		changed := point.Export != export
		point.Export = export
		return changed
	})
}

// SetNumber sets the stored number of the point at index, NaN and infinities are rejected
func (p *Profile) SetNumber(index int, value float64) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if !isFinite(value) {
		return &NumberError{ID: point.ID, Value: value}
	}
	if point.Number != value {
		point.Number = value
		p.touch()
	}
	return nil
}

// AddNumber increments the stored number of the point at index.
// An increment that is not finite or overflows leaves the number unchanged.
func (p *Profile) AddNumber(index int, delta float64) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if !isFinite(delta) {
		return &NumberError{ID: point.ID, Value: delta}
	}
	result := point.Number + delta
	if !isFinite(result) {
		return &NumberError{ID: point.ID, Value: result}
	}
	if result != point.Number {
		point.Number = result
		p.touch()
	}
	return nil
}

// SetFlag sets the stored flag of the point at index
func (p *Profile) SetFlag(index int, value bool) error {
	return p.update(index, func(point *DataPoint) bool {
		changed := point.Flag != value
		point.Flag = value
		return changed
	})
}

// ToggleFlag inverts the stored flag of the point at index
func (p *Profile) ToggleFlag(index int) error {
	return p.update(index, func(point *DataPoint) bool {
		point.Flag = !point.Flag
		return true
	})
}

// SetText sets the stored text of the point at index
func (p *Profile) SetText(index int, value string) error {
	return p.update(index, func(point *DataPoint) bool {
		changed := point.Text != value
		point.Text = value
		return changed
	})
}

func (p *Profile) update(index int, fn func(point *DataPoint) bool) error {
	point, err := p.at(index)
	if err != nil {
		return err
	}
	if fn(point) {
		p.touch()
	}
	return nil
}
