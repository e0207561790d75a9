package profile

import "github.com/viant/dpgraph/calculation"

// Resolution recurses through sources without a cycle check: it relies on the
// graph being acyclic, which every edit guarantees before it commits.

// ResolveNumber returns the effective number of the point at index
func (p *Profile) ResolveNumber(index int) (float64, error) {
	point, err := p.at(index)
	if err != nil {
		return 0, err
	}
	return p.evaluation().number(point.handle), nil
}

// ResolveFlag returns the effective flag of the point at index
func (p *Profile) ResolveFlag(index int) (bool, error) {
	point, err := p.at(index)
	if err != nil {
		return false, err
	}
	return p.evaluation().flag(point.handle), nil
}

// ResolveText returns the effective text of the point at index
func (p *Profile) ResolveText(index int) (string, error) {
	point, err := p.at(index)
	if err != nil {
		return "", err
	}
	return p.evaluation().text(point.handle), nil
}

// Resolve returns the effective value of the point at index for its native kind
func (p *Profile) Resolve(index int) (Value, error) {
	point, err := p.at(index)
	if err != nil {
		return Value{}, err
	}
	return p.evaluation().value(point), nil
}

// evaluation memoizes resolved values for a single resolve call
type evaluation struct {
	profile *Profile
	numbers map[Handle]float64
	flags   map[Handle]bool
	texts   map[Handle]string
}

func (p *Profile) evaluation() *evaluation {
	return &evaluation{
		profile: p,
		numbers: make(map[Handle]float64),
		flags:   make(map[Handle]bool),
		texts:   make(map[Handle]string),
	}
}

func (e *evaluation) value(point *DataPoint) Value {
	switch point.Kind {
	case Flag:
		return FlagValue(e.flag(point.handle))
	case Text:
		return TextValue(e.text(point.handle))
	}
	return NumberValue(e.number(point.handle))
}

func (e *evaluation) number(handle Handle) float64 {
	if value, ok := e.numbers[handle]; ok {
		return value
	}
	point := e.profile.points[handle]
	value := point.Number
	if point.IsCalculated() {
		value = e.profile.strategy(point).Number(e.sources(point))
	}
	e.numbers[handle] = value
	return value
}

func (e *evaluation) flag(handle Handle) bool {
	if value, ok := e.flags[handle]; ok {
		return value
	}
	point := e.profile.points[handle]
	value := point.Flag
	if point.IsCalculated() {
		value = e.profile.strategy(point).Flag(e.sources(point))
	}
	e.flags[handle] = value
	return value
}

func (e *evaluation) text(handle Handle) string {
	if value, ok := e.texts[handle]; ok {
		return value
	}
	point := e.profile.points[handle]
	value := point.Text
	if point.IsCalculated() {
		value = e.profile.strategy(point).Text(e.sources(point))
	}
	e.texts[handle] = value
	return value
}

func (e *evaluation) sources(point *DataPoint) []calculation.Source {
	var result = make([]calculation.Source, 0, len(point.Sources))
	for _, handle := range point.Sources {
		result = append(result, source{evaluation: e, handle: handle})
	}
	return result
}

// source resolves lazily, the calculation picks the accessor
type source struct {
	evaluation *evaluation
	handle     Handle
}

func (s source) Number() float64 { return s.evaluation.number(s.handle) }

func (s source) Flag() bool { return s.evaluation.flag(s.handle) }

func (s source) Text() string { return s.evaluation.text(s.handle) }
