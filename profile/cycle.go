package profile

// createsCycle returns true if adding source to the sources of handle would
// close a dependency loop. It runs on the current state, before the edge exists.
func (p *Profile) createsCycle(handle, source Handle) bool {
	return handle == source || p.reaches(source, handle)
}

// reaches returns true if target is reachable from start following source references
func (p *Profile) reaches(start, target Handle) bool {
	point, ok := p.points[start]
	if !ok {
		return false
	}
	visited := make(map[Handle]bool)
	stack := append([]Handle(nil), point.Sources...)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			return true
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		if next, ok := p.points[current]; ok {
			stack = append(stack, next.Sources...)
		}
	}
	return false
}

// WouldCycle returns true if the point at sourceIndex cannot be a source of the point at index
func (p *Profile) WouldCycle(index, sourceIndex int) (bool, error) {
	point, err := p.at(index)
	if err != nil {
		return false, err
	}
	source, err := p.at(sourceIndex)
	if err != nil {
		return false, err
	}
	return p.createsCycle(point.handle, source.handle), nil
}

// DependsOn returns true if the point at index transitively uses the point at other as a source.
// A point without sources depends on nothing, itself included.
func (p *Profile) DependsOn(index, other int) (bool, error) {
	point, err := p.at(index)
	if err != nil {
		return false, err
	}
	target, err := p.at(other)
	if err != nil {
		return false, err
	}
	return p.reaches(point.handle, target.handle), nil
}

// HasCycle returns true if any source reference chain loops back on itself
func (p *Profile) HasCycle() bool {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[Handle]int, len(p.points))
	var visit func(handle Handle) bool
	visit = func(handle Handle) bool {
		switch state[handle] {
		case active:
			return true
		case done:
			return false
		}
		state[handle] = active
		if point, ok := p.points[handle]; ok {
			for _, source := range point.Sources {
				if visit(source) {
					return true
				}
			}
		}
		state[handle] = done
		return false
	}
	for _, handle := range p.order {
		if visit(handle) {
			return true
		}
	}
	return false
}
